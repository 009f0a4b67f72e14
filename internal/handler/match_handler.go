package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"match-service/internal/dto"
	"match-service/internal/metrics"
	"match-service/internal/response"
	"match-service/internal/service"
)

// MatchHandler handles match HTTP requests
type MatchHandler struct {
	matchService service.MatchService
	retry        *retrier
	logger       *zap.Logger
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(matchService service.MatchService, policy RetryPolicy, logger *zap.Logger, m *metrics.Metrics) *MatchHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchHandler{
		matchService: matchService,
		retry:        newRetrier(policy, logger, m),
		logger:       logger,
	}
}

// CreateMatch godoc
// @Summary      Match 생성
// @Description  새 경기를 만듭니다. publish=true 이면 바로 모집(open) 상태가 됩니다
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMatchRequest true "Match 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.MatchResponse} "Match 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 실패"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Security     BearerAuth
// @Router       /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	match, err := h.matchService.CreateMatch(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, match)
}

// GetMatch godoc
// @Summary      Match 조회
// @Description  경기와 참가자 목록을 조회합니다
// @Tags         matches
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MatchDetailResponse} "Match 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Match ID"
// @Failure      404 {object} response.ErrorResponse "Match를 찾을 수 없음"
// @Security     BearerAuth
// @Router       /matches/{matchId} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID, ok := pathUUID(c, "matchId", "match ID")
	if !ok {
		return
	}

	match, err := h.matchService.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, match)
}

// ListParticipants godoc
// @Summary      참가자 목록 조회
// @Description  참가 순서대로 confirmed, waitlisted 참가자를 모두 반환합니다
// @Tags         matches
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ParticipationResponse} "참가자 목록 조회 성공"
// @Failure      404 {object} response.ErrorResponse "Match를 찾을 수 없음"
// @Security     BearerAuth
// @Router       /matches/{matchId}/participants [get]
func (h *MatchHandler) ListParticipants(c *gin.Context) {
	matchID, ok := pathUUID(c, "matchId", "match ID")
	if !ok {
		return
	}

	participants, err := h.matchService.ListParticipants(c.Request.Context(), matchID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, participants)
}

// JoinMatch godoc
// @Summary      Match 참가
// @Description  빈 자리가 있으면 confirmed, 정원이 찼으면 waitlisted 로 참가합니다
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Param        request body dto.JoinMatchRequest false "팀 지정 (선택)"
// @Success      200 {object} response.SuccessResponse{data=dto.JoinMatchResponse} "참가 성공"
// @Failure      404 {object} response.ErrorResponse "Match를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "이미 참가했거나 참가할 수 없는 상태"
// @Failure      503 {object} response.ErrorResponse "일시적인 충돌, 재시도 필요"
// @Security     BearerAuth
// @Router       /matches/{matchId}/join [post]
func (h *MatchHandler) JoinMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "matchId", "match ID")
	if !ok {
		return
	}

	var req dto.JoinMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	var result *dto.JoinMatchResponse
	err := h.retry.do(c.Request.Context(), "join_match", func() error {
		var err error
		result, err = h.matchService.JoinMatch(c.Request.Context(), matchID, userID, req.TeamID)
		return err
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// LeaveMatch godoc
// @Summary      Match 나가기
// @Description  참가를 취소합니다. 비는 자리는 가장 먼저 대기한 사용자에게 넘어갑니다
// @Tags         matches
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.LeaveMatchResponse} "나가기 성공"
// @Failure      404 {object} response.ErrorResponse "Match 또는 참가 정보를 찾을 수 없음"
// @Failure      409 {object} response.ErrorResponse "종료된 경기"
// @Security     BearerAuth
// @Router       /matches/{matchId}/leave [delete]
func (h *MatchHandler) LeaveMatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "matchId", "match ID")
	if !ok {
		return
	}

	var result *dto.LeaveMatchResponse
	err := h.retry.do(c.Request.Context(), "leave_match", func() error {
		var err error
		result, err = h.matchService.LeaveMatch(c.Request.Context(), matchID, userID)
		return err
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// PublishMatch godoc
// @Summary      Match 공개
// @Description  draft 경기를 open 으로 전환합니다 (owner 전용)
// @Tags         matches
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MatchResponse} "공개 성공"
// @Failure      403 {object} response.ErrorResponse "owner 가 아님"
// @Failure      422 {object} response.ErrorResponse "허용되지 않는 상태 전이"
// @Security     BearerAuth
// @Router       /matches/{matchId}/publish [post]
func (h *MatchHandler) PublishMatch(c *gin.Context) {
	h.lifecycle(c, "publish_match", h.matchService.PublishMatch)
}

// StartMatch godoc
// @Summary      Match 시작
// @Description  full 경기를 in_progress 로 전환합니다 (owner 전용)
// @Tags         matches
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MatchResponse} "시작 성공"
// @Failure      403 {object} response.ErrorResponse "owner 가 아님"
// @Failure      422 {object} response.ErrorResponse "허용되지 않는 상태 전이"
// @Security     BearerAuth
// @Router       /matches/{matchId}/start [post]
func (h *MatchHandler) StartMatch(c *gin.Context) {
	h.lifecycle(c, "start_match", h.matchService.StartMatch)
}

// FinishMatch godoc
// @Summary      Match 종료
// @Description  진행 중인 경기를 finished 로 전환합니다 (owner 전용)
// @Tags         matches
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MatchResponse} "종료 성공"
// @Failure      403 {object} response.ErrorResponse "owner 가 아님"
// @Failure      422 {object} response.ErrorResponse "허용되지 않는 상태 전이"
// @Security     BearerAuth
// @Router       /matches/{matchId}/finish [post]
func (h *MatchHandler) FinishMatch(c *gin.Context) {
	h.lifecycle(c, "finish_match", h.matchService.FinishMatch)
}

// CancelMatch godoc
// @Summary      Match 취소
// @Description  open 또는 진행 중인 경기를 취소합니다 (owner 전용)
// @Tags         matches
// @Produce      json
// @Param        matchId path string true "Match ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MatchResponse} "취소 성공"
// @Failure      403 {object} response.ErrorResponse "owner 가 아님"
// @Failure      422 {object} response.ErrorResponse "허용되지 않는 상태 전이"
// @Security     BearerAuth
// @Router       /matches/{matchId}/cancel [post]
func (h *MatchHandler) CancelMatch(c *gin.Context) {
	h.lifecycle(c, "cancel_match", h.matchService.CancelMatch)
}

func (h *MatchHandler) lifecycle(
	c *gin.Context,
	operation string,
	fn func(ctx context.Context, matchID, callerID uuid.UUID) (*dto.MatchResponse, error),
) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	matchID, ok := pathUUID(c, "matchId", "match ID")
	if !ok {
		return
	}

	var match *dto.MatchResponse
	err := h.retry.do(c.Request.Context(), operation, func() error {
		var err error
		match, err = fn(c.Request.Context(), matchID, userID)
		return err
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, match)
}
