package domain

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one conversation turn
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// Greeting is shown above the conversation. It is not part of the turn log.
const Greeting = "Namaste! I'm FundVision AI. I've analyzed your recent spending and noticed you spent ₹1,500 more on dining out this week. How can I help you optimize your finances today?"

// SuggestedTask is a one-tap query offered by the chat UI
type SuggestedTask struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// SuggestedTasks are the chips shown under the chat input
var SuggestedTasks = []SuggestedTask{
	{Label: "Analyze spending", Query: "Can you analyze my spending patterns for the last week?"},
	{Label: "Savings advice", Query: "How can I save more for my dream home goal?"},
	{Label: "Budget check", Query: "Which budget category am I most likely to exceed?"},
	{Label: "Investment tips", Query: "Give me some basic investment tips for a beginner in India."},
	{Label: "Expense summary", Query: "Summarize my top 3 biggest expenses this month."},
}
