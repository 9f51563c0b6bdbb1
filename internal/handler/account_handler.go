package handler

import (
	"net/http"

	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// AccountsResponse lists accounts with their balance split
type AccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Balances BalancesResponse  `json:"balances"`
}

// GetAccounts godoc
// @Summary List accounts
// @Description Accounts with total, bank and cash balances
// @Tags accounts
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} AccountsResponse
// @Failure 404 {object} ProblemDetails
// @Router /sessions/{sessionId}/accounts [get]
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	accounts := h.accountService.ListAccounts(sess)
	response := AccountsResponse{
		Accounts: make([]AccountResponse, len(accounts)),
		Balances: toBalancesResponse(h.accountService.GetBalances(sess)),
	}
	for i, a := range accounts {
		response.Accounts[i] = toAccountResponse(a)
	}

	return c.JSON(http.StatusOK, response)
}
