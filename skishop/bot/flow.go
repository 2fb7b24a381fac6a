package bot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m3rciful/skishopbot/skishop/catalog"
	"github.com/m3rciful/skishopbot/skishop/session"
)

// EventKind tags what kind of update reached the state machine.
type EventKind int

const (
	// EventText is a plain text message (commands are routed separately).
	EventText EventKind = iota
	// EventPhoto is a photo message; PhotoID carries the transport file ID
	// of the highest-resolution variant.
	EventPhoto
)

// Event is one inbound update as seen by the state machine.
type Event struct {
	Kind    EventKind
	Text    string
	PhotoID string
}

// Markup selects the reply keyboard attached to an outbound message.
type Markup int

const (
	MarkupNone Markup = iota
	MarkupRemove
	MarkupCategories
	MarkupStop
	MarkupConfirm
)

// Reply is one outbound message produced by a transition.
type Reply struct {
	Text   string
	Markup Markup
}

// Action asks the transport adapter to perform work the pure state machine
// cannot: render a media preview or run the commit pipeline.
type Action int

const (
	ActionNone Action = iota
	// ActionPreview renders the draft summary with the staged photos,
	// before any Replies are sent.
	ActionPreview
	// ActionCommit uploads the staged photos and persists the draft.
	// The session is already reset; Draft and Staged carry the snapshot.
	ActionCommit
)

// Result is the full effect of applying one event: messages to send, an
// optional side-effect action, and a snapshot of the draft for that action.
// The session itself is mutated in place (step advance, field set).
type Result struct {
	Replies []Reply
	Action  Action
	Draft   *catalog.Product
	Staged  []string
}

func say(text string, markup Markup) Result {
	return Result{Replies: []Reply{{Text: text, Markup: markup}}}
}

// Apply interprets one inbound event against the session's current step.
// Global commands never reach here; they are intercepted at the command
// layer. Events that make no sense for the step are ignored without any
// state change.
func Apply(sess *session.Session, ev Event) Result {
	switch sess.Step {
	case session.StepWaitingCategory:
		return applyCategory(sess, ev)
	case session.StepWaitingPhoto:
		return applyPhoto(sess, ev)
	case session.StepWaitingName:
		return applyName(sess, ev)
	case session.StepWaitingSize:
		return applySize(sess, ev)
	case session.StepWaitingDescription:
		return applyDescription(sess, ev)
	case session.StepWaitingPrice:
		return applyPrice(sess, ev)
	case session.StepConfirm:
		return applyConfirm(sess, ev)
	}
	// Idle: /add begins the flow at the command layer; everything else is
	// ignored.
	return Result{}
}

func applyCategory(sess *session.Session, ev Event) Result {
	if ev.Kind != EventText {
		return Result{}
	}
	cat, ok := catalog.CategoryFromLabel(strings.TrimSpace(ev.Text))
	if !ok {
		return say(textUnknownCategory, MarkupCategories)
	}
	sess.Draft.Category = cat
	sess.Step = session.StepWaitingPhoto
	return say(fmt.Sprintf(photoPromptFmt, cat.FriendlyName()), MarkupStop)
}

func applyPhoto(sess *session.Session, ev Event) Result {
	if ev.Kind == EventPhoto {
		sess.StagedPhotos = append(sess.StagedPhotos, ev.PhotoID)
		return say(fmt.Sprintf(textPhotoAddedFmt, len(sess.StagedPhotos)), MarkupNone)
	}
	if isStopSignal(ev.Text) {
		if len(sess.StagedPhotos) == 0 {
			return say(textNeedPhoto, MarkupNone)
		}
		sess.Step = session.StepWaitingName
		return say(textPhotosAccepted, MarkupRemove)
	}
	return Result{}
}

// isStopSignal matches the stop button label and the bare stop tokens,
// case-insensitively.
func isStopSignal(text string) bool {
	upper := strings.ToUpper(strings.TrimSpace(text))
	if upper == "" {
		return false
	}
	return upper == "STOP" || strings.Contains(upper, "СТОП")
}

func applyName(sess *session.Session, ev Event) Result {
	if ev.Kind != EventText {
		return Result{}
	}
	if err := ValidateText(ev.Text); err != nil {
		return say(err.Error(), MarkupNone)
	}
	sess.Draft.Name = ev.Text

	prompt := textSizeBoots
	if sess.Draft.Category == catalog.CategorySkis {
		prompt = textSizeSkis
	}
	sess.Step = session.StepWaitingSize
	return say(prompt, MarkupNone)
}

func applySize(sess *session.Session, ev Event) Result {
	if ev.Kind != EventText {
		return Result{}
	}
	size, err := parseDecimal(ev.Text)
	if err != nil {
		return say(textNumberError, MarkupNone)
	}
	sess.Draft.Size = size
	sess.Step = session.StepWaitingDescription
	return say(textAskDescription, MarkupNone)
}

func applyDescription(sess *session.Session, ev Event) Result {
	if ev.Kind != EventText {
		return Result{}
	}
	if err := ValidateText(ev.Text); err != nil {
		return say(err.Error(), MarkupNone)
	}
	sess.Draft.Description = ev.Text
	sess.Step = session.StepWaitingPrice
	return say(textAskPrice, MarkupNone)
}

func applyPrice(sess *session.Session, ev Event) Result {
	if ev.Kind != EventText {
		return Result{}
	}
	price, err := parseDecimal(ev.Text)
	if err != nil || price.IsNegative() {
		return say(textNumberError, MarkupNone)
	}
	sess.Draft.Price = price
	sess.Step = session.StepConfirm

	res := say(textConfirm, MarkupConfirm)
	res.Action = ActionPreview
	res.Draft = sess.Draft
	res.Staged = append([]string(nil), sess.StagedPhotos...)
	return res
}

func applyConfirm(sess *session.Session, ev Event) Result {
	if ev.Kind == EventText && strings.TrimSpace(ev.Text) == btnYes {
		res := Result{
			Action: ActionCommit,
			Draft:  sess.Draft,
			Staged: append([]string(nil), sess.StagedPhotos...),
		}
		sess.FinishDraft()
		return res
	}
	sess.FinishDraft()
	return say(textCommitAborted, MarkupRemove)
}

// parseDecimal accepts both dot and comma decimal separators.
func parseDecimal(text string) (decimal.Decimal, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	return decimal.NewFromString(trimmed)
}
