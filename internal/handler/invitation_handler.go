package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"match-service/internal/dto"
	"match-service/internal/metrics"
	"match-service/internal/response"
	"match-service/internal/service"
)

// InvitationHandler handles invitation HTTP requests
type InvitationHandler struct {
	invitationService service.InvitationService
	retry             *retrier
	logger            *zap.Logger
}

// NewInvitationHandler creates a new InvitationHandler
func NewInvitationHandler(invitationService service.InvitationService, policy RetryPolicy, logger *zap.Logger, m *metrics.Metrics) *InvitationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvitationHandler{
		invitationService: invitationService,
		retry:             newRetrier(policy, logger, m),
		logger:            logger,
	}
}

// CreateInvitation godoc
// @Summary      초대 생성
// @Description  경기 owner 또는 참가자가 다른 사용자를 초대합니다. 초대는 7일 뒤 만료됩니다
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Param        request body dto.CreateInvitationRequest true "초대 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.InvitationResponse} "초대 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "초대 권한 없음"
// @Failure      404 {object} response.ErrorResponse "Match를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 참가 중이거나 대기 중인 초대가 있음"
// @Security     BearerAuth
// @Router       /matches/{matchId}/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "matchId", "match ID")
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	var invitation *dto.InvitationResponse
	err := h.retry.do(c.Request.Context(), "create_invitation", func() error {
		var err error
		invitation, err = h.invitationService.CreateInvitation(c.Request.Context(), matchID, userID, &req)
		return err
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, invitation)
}

// RespondToInvitation godoc
// @Summary      초대 응답
// @Description  초대받은 사용자가 수락(accept) 또는 거절(decline) 합니다. 수락하면 경기에 참가합니다
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        invitationId path string true "Invitation ID (UUID)"
// @Param        request body dto.RespondInvitationRequest true "응답"
// @Success      200 {object} response.SuccessResponse{data=dto.InvitationResponse} "응답 성공"
// @Failure      403 {object} response.ErrorResponse "초대받은 사용자가 아님"
// @Failure      404 {object} response.ErrorResponse "초대를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 처리된 초대"
// @Failure      410 {object} response.ErrorResponse "만료된 초대"
// @Security     BearerAuth
// @Router       /invitations/{invitationId}/respond [post]
func (h *InvitationHandler) RespondToInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invitationID, ok := pathUUID(c, "invitationId", "invitation ID")
	if !ok {
		return
	}

	var req dto.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	var invitation *dto.InvitationResponse
	err := h.retry.do(c.Request.Context(), "respond_invitation", func() error {
		var err error
		invitation, err = h.invitationService.RespondToInvitation(c.Request.Context(), invitationID, userID, req.Action)
		return err
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invitation)
}

// ListMyInvitations godoc
// @Summary      내 초대 목록
// @Description  로그인한 사용자가 받은 초대를 최신순으로 조회합니다
// @Tags         invitations
// @Produce      json
// @Param        status query string false "상태 필터 (pending, accepted, declined, expired)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.InvitationResponse} "조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 상태 필터"
// @Security     BearerAuth
// @Router       /invitations/me [get]
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	invitations, err := h.invitationService.ListMyInvitations(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invitations)
}
