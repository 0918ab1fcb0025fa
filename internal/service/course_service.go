package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"syllabus_ai_backend/internal/config"
	"syllabus_ai_backend/internal/model"
	"syllabus_ai_backend/internal/repository"
	"syllabus_ai_backend/internal/util"
	"syllabus_ai_backend/pkg/logger"
	"syllabus_ai_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultDuration        = 12
	defaultSessionsPerWeek = 2
	defaultHomeworkHours   = 6
	defaultCourseContent   = "No course content provided."

	// AI 响应缺键时的占位 topic/summary
	placeholderTopic   = "WIP"
	placeholderSummary = "WIP"

	courseListCacheKey = "syllabus:courses:all"
	courseListCacheTTL = 5 * time.Minute
)

type CreateCourseRequest struct {
	TeacherEmail    string
	Code            string
	Name            string
	Content         string
	Objectives      string
	Prerequisites   string
	Duration        int
	SessionsPerWeek int
	HomeworkHours   int
}

type WeekResponse struct {
	ID         uint   `json:"id"`
	WeekNumber int    `json:"week_number"`
	Topic      string `json:"topic"`
	Summary    string `json:"summary"`
	Planned    bool   `json:"planned"`
}

type CourseResponse struct {
	ID              uint           `json:"id"`
	Name            string         `json:"name"`
	Code            string         `json:"code"`
	Content         string         `json:"content"`
	Duration        int            `json:"duration"`
	SessionsPerWeek int            `json:"sessionsPerWeek"`
	Objectives      string         `json:"objectives"`
	Prerequisites   string         `json:"prerequisites"`
	Weeks           []WeekResponse `json:"weeks"`
}

type CourseService struct {
	teacherRepo *repository.TeacherRepository
	courseRepo  *repository.CourseRepository
	weekRepo    *repository.WeekRepository
	prompts     *PromptBuilder
	ai          Generator
	db          *gorm.DB
	rdb         *redis.Client
	emailDomain string
}

func NewCourseService(
	teacherRepo *repository.TeacherRepository,
	courseRepo *repository.CourseRepository,
	weekRepo *repository.WeekRepository,
	prompts *PromptBuilder,
	ai Generator,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
) *CourseService {
	return &CourseService{
		teacherRepo: teacherRepo,
		courseRepo:  courseRepo,
		weekRepo:    weekRepo,
		prompts:     prompts,
		ai:          ai,
		db:          db,
		rdb:         rdb,
		emailDomain: cfg.Teacher.EmailDomain,
	}
}

// weekDraft AI 响应中 "week {n}" 键对应的对象
type weekDraft struct {
	Topic   string `json:"topic"`
	Summary string `json:"summary"`
}

// CreateCourseStructure 建课工作流：校验邮箱 → 生成周计划 → 惰性建教师 →
// 建课程与全部教学周。课程代码已存在时整体视为成功空操作。
func (s *CourseService) CreateCourseStructure(ctx context.Context, req CreateCourseRequest) (string, error) {
	if !util.ValidateTeacherEmail(req.TeacherEmail, s.emailDomain) {
		return "", util.ErrInvalidTeacherEmail
	}

	if req.Duration <= 0 {
		req.Duration = defaultDuration
	}
	if req.SessionsPerWeek <= 0 {
		req.SessionsPerWeek = defaultSessionsPerWeek
	}
	if req.HomeworkHours <= 0 {
		req.HomeworkHours = defaultHomeworkHours
	}
	if req.Content == "" {
		req.Content = defaultCourseContent
	}

	prompt, err := s.prompts.BuildCoursePrompt(CoursePromptData{
		CourseName:      req.Name,
		Content:         req.Content,
		Objectives:      req.Objectives,
		Prerequisites:   req.Prerequisites,
		Duration:        req.Duration,
		SessionsPerWeek: req.SessionsPerWeek,
		HomeworkHours:   req.HomeworkHours,
	})
	if err != nil {
		return "", err
	}

	start := time.Now()
	raw, err := s.ai.GenerateContent(ctx, prompt)
	monitoring.ObserveAIRequest("course", err, time.Since(start))
	if err != nil {
		return "", err
	}

	parsed, err := util.CleanJSON(raw)
	if err != nil {
		return "", err
	}

	// 此前无任何写入；教师与课程的查建在同一事务内完成
	status := ""
	err = s.db.Transaction(func(tx *gorm.DB) error {
		teacher, err := s.lookupOrCreateTeacher(tx, req.TeacherEmail)
		if err != nil {
			return err
		}

		if _, err := s.courseRepo.WithTx(tx).FindByCode(req.Code); err == nil {
			status = fmt.Sprintf("Course already exists: %s", req.Code)
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		course := &model.Course{
			TeacherID: teacher.ID,
			Code:      req.Code,
			Name:      req.Name,
			Content:   req.Content,
		}
		if err := course.SetMeta(model.CourseMeta{
			Objectives:      req.Objectives,
			Prerequisites:   req.Prerequisites,
			Duration:        req.Duration,
			SessionsPerWeek: req.SessionsPerWeek,
			HomeworkHours:   req.HomeworkHours,
		}); err != nil {
			return err
		}
		if err := s.courseRepo.WithTx(tx).Create(course); err != nil {
			return err
		}

		weeks := make([]model.Week, 0, req.Duration)
		for n := 1; n <= req.Duration; n++ {
			draft := weekDraft{Topic: placeholderTopic, Summary: placeholderSummary}
			if value, ok := parsed[fmt.Sprintf("week %d", n)]; ok {
				if err := json.Unmarshal(value, &draft); err != nil {
					// 单个键的形状不对按缺失处理，不整体失败
					draft = weekDraft{Topic: placeholderTopic, Summary: placeholderSummary}
				}
			}
			weeks = append(weeks, model.Week{
				CourseID:   course.ID,
				WeekNumber: n,
				Topic:      draft.Topic,
				Summary:    draft.Summary,
			})
		}
		if err := s.weekRepo.WithTx(tx).CreateBatch(weeks); err != nil {
			return err
		}

		status = fmt.Sprintf("New course created: %s", req.Name)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.invalidateCourseCache(ctx)
	return status, nil
}

// lookupOrCreateTeacher 并发下两次存在性检查可能都看到"不存在"，
// 唯一索引冲突时重读一次而不是把 1062 抛给调用方
func (s *CourseService) lookupOrCreateTeacher(tx *gorm.DB, email string) (*model.Teacher, error) {
	repo := s.teacherRepo.WithTx(tx)

	teacher, err := repo.FindByEmail(email)
	if err == nil {
		return teacher, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	teacher = &model.Teacher{
		Email:  email,
		Handle: util.EmailHandle(email),
	}
	if err := repo.Create(teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repo.FindByEmail(email)
		}
		return nil, err
	}
	return teacher, nil
}

// GetAllCourses 全量课程及教学周，周按 week_number 升序；结果短暂缓存
func (s *CourseService) GetAllCourses(ctx context.Context) ([]CourseResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, courseListCacheKey).Result(); err == nil {
			var result []CourseResponse
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	courses, err := s.courseRepo.FindAllWithWeeks()
	if err != nil {
		return nil, err
	}

	result := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		meta := course.Meta()
		item := CourseResponse{
			ID:              course.ID,
			Name:            course.Name,
			Code:            course.Code,
			Content:         course.Content,
			Duration:        meta.Duration,
			SessionsPerWeek: meta.SessionsPerWeek,
			Objectives:      meta.Objectives,
			Prerequisites:   meta.Prerequisites,
			Weeks:           make([]WeekResponse, 0, len(course.Weeks)),
		}
		for _, week := range course.Weeks {
			item.Weeks = append(item.Weeks, WeekResponse{
				ID:         week.ID,
				WeekNumber: week.WeekNumber,
				Topic:      week.Topic,
				Summary:    week.Summary,
				Planned:    week.Planned,
			})
		}
		result = append(result, item)
	}

	if s.rdb != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.rdb.Set(ctx, courseListCacheKey, data, courseListCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache course list", zap.Error(err))
			}
		}
	}

	return result, nil
}

func (s *CourseService) invalidateCourseCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, courseListCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate course cache", zap.Error(err))
	}
}
