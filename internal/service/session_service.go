package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"syllabus_ai_backend/internal/model"
	"syllabus_ai_backend/internal/repository"
	"syllabus_ai_backend/internal/util"
	"syllabus_ai_backend/pkg/monitoring"
	"time"

	"gorm.io/gorm"
)

const (
	defaultSessionCount    = 2
	defaultHoursPerSession = 2
)

type SessionResponse struct {
	ID          uint            `json:"id"`
	MinutesData json.RawMessage `json:"minutes_data"`
}

type WeekSessionsResponse struct {
	WeekID   uint              `json:"week_id"`
	Topic    string            `json:"topic"`
	Summary  string            `json:"summary"`
	Sessions []SessionResponse `json:"sessions"`
}

type SessionService struct {
	weekRepo    *repository.WeekRepository
	sessionRepo *repository.SessionRepository
	prompts     *PromptBuilder
	ai          Generator
	db          *gorm.DB
}

func NewSessionService(
	weekRepo *repository.WeekRepository,
	sessionRepo *repository.SessionRepository,
	prompts *PromptBuilder,
	ai Generator,
	db *gorm.DB,
) *SessionService {
	return &SessionService{
		weekRepo:    weekRepo,
		sessionRepo: sessionRepo,
		prompts:     prompts,
		ai:          ai,
		db:          db,
	}
}

// GenerateWeekSessions 为某教学周一次性生成全部课次并置 planned=true。
// 已排课的周直接冲突报错，课次与周状态在同一事务内提交。
func (s *SessionService) GenerateWeekSessions(ctx context.Context, weekID uint) (*WeekSessionsResponse, error) {
	week, err := s.loadWeek(weekID)
	if err != nil {
		return nil, err
	}
	if week.Planned {
		return nil, util.ErrWeekAlreadyPlanned
	}

	parsed, count, err := s.draftSessions(ctx, week, "")
	if err != nil {
		return nil, err
	}

	var created []model.Session
	err = s.db.Transaction(func(tx *gorm.DB) error {
		created, err = s.insertSessions(tx, week.ID, parsed, count)
		if err != nil {
			return err
		}
		return s.weekRepo.WithTx(tx).MarkPlanned(week.ID)
	})
	if err != nil {
		return nil, err
	}

	return buildWeekSessionsResponse(week, created), nil
}

// RegenerateWeekSessions 重排已生成的周：删旧课次、按教师附加要求重新生成。
// planned 保持 true，删除与新建在同一事务内。
func (s *SessionService) RegenerateWeekSessions(ctx context.Context, weekID uint, extraPrompt string) (*WeekSessionsResponse, error) {
	week, err := s.loadWeek(weekID)
	if err != nil {
		return nil, err
	}
	if !week.Planned {
		return nil, util.ErrWeekNotPlanned
	}

	parsed, count, err := s.draftSessions(ctx, week, extraPrompt)
	if err != nil {
		return nil, err
	}

	var created []model.Session
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.sessionRepo.WithTx(tx).DeleteByWeekID(week.ID); err != nil {
			return err
		}
		created, err = s.insertSessions(tx, week.ID, parsed, count)
		return err
	})
	if err != nil {
		return nil, err
	}

	return buildWeekSessionsResponse(week, created), nil
}

// GetWeekSessions 查询某周的全部课次
func (s *SessionService) GetWeekSessions(weekID uint) (*WeekSessionsResponse, error) {
	week, err := s.loadWeek(weekID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.FindByWeekID(week.ID)
	if err != nil {
		return nil, err
	}

	return buildWeekSessionsResponse(week, sessions), nil
}

func (s *SessionService) loadWeek(weekID uint) (*model.Week, error) {
	if weekID == 0 {
		return nil, util.ErrMissingWeekID
	}
	week, err := s.weekRepo.FindByID(weekID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrWeekNotFound
		}
		return nil, err
	}
	return week, nil
}

// draftSessions 组装课次提示词并调用 AI，返回解析后的响应和本周课次数
func (s *SessionService) draftSessions(ctx context.Context, week *model.Week, extraPrompt string) (map[string]json.RawMessage, int, error) {
	var meta model.CourseMeta
	var courseName, courseContent string
	if week.Course != nil {
		meta = week.Course.Meta()
		courseName = week.Course.Name
		courseContent = week.Course.Content
	}

	count := meta.SessionsPerWeek
	if count <= 0 {
		count = defaultSessionCount
	}
	hours := meta.HoursPerSession
	if hours <= 0 {
		hours = defaultHoursPerSession
	}

	prompt, err := s.prompts.BuildSessionPrompt(SessionPromptData{
		CourseName:      courseName,
		Content:         courseContent,
		Objectives:      meta.Objectives,
		Topic:           week.Topic,
		Summary:         week.Summary,
		SessionCount:    count,
		HoursPerSession: hours,
		ExtraPrompt:     extraPrompt,
	})
	if err != nil {
		return nil, 0, err
	}

	start := time.Now()
	raw, err := s.ai.GenerateContent(ctx, prompt)
	monitoring.ObserveAIRequest("session", err, time.Since(start))
	if err != nil {
		return nil, 0, err
	}

	parsed, err := util.CleanJSON(raw)
	if err != nil {
		return nil, 0, err
	}
	return parsed, count, nil
}

// insertSessions 只为响应中实际存在的 "session {i}" 键建行，缺键静默跳过
func (s *SessionService) insertSessions(tx *gorm.DB, weekID uint, parsed map[string]json.RawMessage, count int) ([]model.Session, error) {
	sessions := make([]model.Session, 0, count)
	for i := 1; i <= count; i++ {
		value, ok := parsed[fmt.Sprintf("session %d", i)]
		if !ok {
			continue
		}
		sessions = append(sessions, model.Session{
			WeekID:    weekID,
			SessionNo: i,
			Data:      value,
		})
	}

	if len(sessions) == 0 {
		return sessions, nil
	}
	if err := s.sessionRepo.WithTx(tx).CreateBatch(sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func buildWeekSessionsResponse(week *model.Week, sessions []model.Session) *WeekSessionsResponse {
	resp := &WeekSessionsResponse{
		WeekID:   week.ID,
		Topic:    week.Topic,
		Summary:  week.Summary,
		Sessions: make([]SessionResponse, 0, len(sessions)),
	}
	for _, session := range sessions {
		resp.Sessions = append(resp.Sessions, SessionResponse{
			ID:          session.ID,
			MinutesData: session.Data,
		})
	}
	return resp
}
