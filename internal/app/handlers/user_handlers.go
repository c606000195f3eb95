package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	appContext "github.com/ujwegh/gamemart/internal/app/context"
	appErrors "github.com/ujwegh/gamemart/internal/app/errors"
	"github.com/ujwegh/gamemart/internal/app/models"
	"github.com/ujwegh/gamemart/internal/app/service"
)

type (
	UserHandler struct {
		userService     service.UserService
		referralService service.ReferralService
		contextTimeout  time.Duration
	}
	//easyjson:json
	UserDto struct {
		TelegramID  int64  `json:"telegram_id"`
		Username    string `json:"username,omitempty"`
		BalanceRUB  string `json:"balance_rub"`
		BalanceUSDT string `json:"balance_usdt"`
		OrdersCount int    `json:"orders_count"`
	}
	//easyjson:json
	ReferrerRequestDto struct {
		ReferrerTelegramID int64 `json:"referrer_telegram_id"`
	}
)

func NewUserHandler(userService service.UserService, referralService service.ReferralService, contextTimeoutSec int) *UserHandler {
	return &UserHandler{
		userService:     userService,
		referralService: referralService,
		contextTimeout:  time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Me godoc
// @Summary Current user
// @Tags user
// @Produce json
// @Success 200 {object} UserDto
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security ApiKeyAuth
// @Router /api/user/me [get]
func (uh *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	response := UserDto{
		TelegramID:  user.TelegramID,
		Username:    user.Username,
		BalanceRUB:  user.BalanceRUB.Format(models.RUB),
		BalanceUSDT: user.BalanceUSDT.Format(models.USDT),
		OrdersCount: user.OrdersCount,
	}
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}
	if err := appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rawBytes)
}

// SetReferrer godoc
// @Summary Link a referrer
// @Description Records who invited the user. A user can be referred once and never by themselves.
// @Tags user
// @Accept json
// @Param referrer body ReferrerRequestDto true "Referrer"
// @Success 201 "Referrer linked"
// @Failure 404 {object} ErrorResponse "Referrer not found"
// @Failure 409 {object} ErrorResponse "Referrer already set"
// @Failure 422 {object} ErrorResponse "Self referral"
// @Security ApiKeyAuth
// @Router /api/user/referrer [post]
func (uh *UserHandler) SetReferrer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()
	user := appContext.User(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := ReferrerRequestDto{}
	if err := request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	if request.ReferrerTelegramID <= 0 {
		PrepareError(w, appErrors.NewWithCode(fmt.Errorf("referrer telegram id is required"), "Referrer is required", http.StatusBadRequest))
		return
	}

	referrer, err := uh.userService.GetByTelegramID(ctx, request.ReferrerTelegramID)
	if err != nil {
		PrepareError(w, err)
		return
	}
	if err := uh.referralService.Link(ctx, user.ID, referrer.ID); err != nil {
		PrepareError(w, err)
		return
	}
	if err := appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
