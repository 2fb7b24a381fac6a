// Package session tracks per-chat conversation progress for the product
// entry flow. Sessions are ephemeral: a process restart loses them and the
// operator simply starts over with /add.
package session

import "github.com/m3rciful/skishopbot/skishop/catalog"

// Step identifies the current state of the product entry conversation.
type Step string

const (
	StepIdle               Step = "idle"
	StepWaitingCategory    Step = "waiting_category"
	StepWaitingPhoto       Step = "waiting_photo"
	StepWaitingName        Step = "waiting_name"
	StepWaitingSize        Step = "waiting_size"
	StepWaitingDescription Step = "waiting_description"
	StepWaitingPrice       Step = "waiting_price"
	StepConfirm            Step = "confirm"
)

// Session stores conversation state and the product draft for one chat.
// StagedPhotos keeps Telegram file IDs in upload order; they become durable
// URLs only at commit time.
type Session struct {
	Step         Step
	Draft        *catalog.Product
	StagedPhotos []string
}

func newSession() *Session {
	return &Session{Step: StepIdle}
}

// StartDraft resets the session for a fresh product entry.
func (s *Session) StartDraft() {
	s.Draft = &catalog.Product{}
	s.StagedPhotos = nil
	s.Step = StepWaitingCategory
}

// FinishDraft clears the draft and staged media and returns to idle.
func (s *Session) FinishDraft() {
	s.Draft = nil
	s.StagedPhotos = nil
	s.Step = StepIdle
}
