package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"legalmind/app/client/deepseek"
	"legalmind/app/config"
	"legalmind/app/domain"
	"legalmind/app/service/session"

	"github.com/elliotchance/pie/v2"
	"github.com/samber/do"
)

// minProblemLength is the minimum problem description length in characters.
const minProblemLength = 20

// Service drives the intake conversation: problem description, analysis,
// category-specific followup questions, final report. Every method returns
// the reply text to deliver to the user.
type Service struct {
	cfg      *config.Config
	sessions *session.Service
	analyzer *deepseek.Client
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:      do.MustInvoke[*config.Config](di),
		sessions: do.MustInvoke[*session.Service](di),
		analyzer: do.MustInvoke[*deepseek.Client](di),
	}, nil
}

func (s *Service) Welcome() string {
	return msgWelcome
}

func (s *Service) Help() string {
	return msgHelp
}

func (s *Service) ResourcesMenu() string {
	return msgResourcesMenu
}

// ResourcesByTopic serves the /resources_* commands.
func (s *Service) ResourcesByTopic(category domain.Category) string {
	return fmt.Sprintf("משאבים משפטיים - %s\n\n%s\n\nחזרה: /resources",
		categoryLabel(category), ResourcesFor(category))
}

// StartCase opens a fresh case for the user, discarding any previous one.
func (s *Service) StartCase(userID int64) string {
	sess := s.sessions.CreateOrReplace(userID)

	sess.Lock()
	defer sess.Unlock()

	sess.Active = true
	sess.AwaitingProblem = true
	sess.Touch()

	slog.Info("Started new case", "user_id", userID)

	return msgNewCase
}

// EndCase closes the user's case. A case that reached analysis gets its
// report one last time.
func (s *Service) EndCase(userID int64) string {
	sess, ok := s.sessions.Get(userID)
	if !ok {
		return msgNoOpenCase
	}

	sess.Lock()
	defer sess.Unlock()

	if !sess.Active {
		return msgNoOpenCase
	}

	defer sess.Deactivate()

	slog.Info("Ended case", "user_id", userID, "slots", len(sess.Slots))

	if sess.Analysis == nil {
		return "התיק הסתיים ללא ניתוח.\n\nלתיק חדש: /new"
	}

	reply := finalReport(sess)
	reply += "\n\n✓ התיק הסתיים בהצלחה"
	reply += "\n\nלתיק חדש: /new"

	return reply
}

// HandleText processes one free-text message from the user and advances the
// session state machine. The session stays locked for the whole turn, so a
// user's messages are handled strictly one at a time.
func (s *Service) HandleText(ctx context.Context, userID int64, text string) string {
	sess := s.sessions.GetOrCreate(userID)

	sess.Lock()
	defer sess.Unlock()

	sess.Touch()

	if !sess.Active {
		return msgNoOpenCase
	}

	if sess.AwaitingProblem {
		return s.handleProblem(ctx, userID, sess, text)
	}

	if sess.PendingSlot != "" {
		value, ok := Validate(sess.PendingKind, text)
		if !ok {
			return msgInvalidAnswer + sess.PendingQuestion
		}

		sess.Slots[sess.PendingSlot] = value
		sess.ClearPending()
	}

	return s.nextQuestionOrReport(sess)
}

func (s *Service) handleProblem(ctx context.Context, userID int64, sess *domain.Session, text string) string {
	if len([]rune(text)) < minProblemLength {
		return msgTooShort
	}

	start := time.Now()
	analysis := s.analyzer.Analyze(ctx, text, nil)

	slog.Info("Analyzed problem",
		"user_id", userID,
		"category", analysis.Category,
		"confidence", analysis.Confidence,
		"duration", time.Since(start))

	sess.Analysis = analysis
	sess.AwaitingProblem = false

	followups := followupsFor(analysis.Category)
	if len(followups) == 0 {
		return finalReport(sess)
	}

	sess.SetPending(followups[0])

	return "הבעיה נותחה בהצלחה.\n\n" +
		"כמה שאלות נוספות לדיוק הניתוח:\n\n" +
		sess.PendingQuestion
}

// nextQuestionOrReport asks the first catalog question whose slot is still
// unanswered, or emits the final report when none remain.
func (s *Service) nextQuestionOrReport(sess *domain.Session) string {
	followups := followupsFor(sess.Analysis.Category)

	remaining := pie.Filter(followups, func(f domain.Followup) bool {
		_, answered := sess.Slots[f.Slot]
		return !answered
	})

	if len(remaining) == 0 {
		return finalReport(sess)
	}

	sess.SetPending(remaining[0])

	return fmt.Sprintf("%s\n\nשאלות נותרו: %d", sess.PendingQuestion, len(remaining))
}
