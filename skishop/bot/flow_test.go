package bot

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/m3rciful/skishopbot/skishop/catalog"
	"github.com/m3rciful/skishopbot/skishop/session"
)

func startedSession() *session.Session {
	sess := &session.Session{}
	sess.StartDraft()
	return sess
}

func text(t string) Event  { return Event{Kind: EventText, Text: t} }
func photo(id string) Event { return Event{Kind: EventPhoto, PhotoID: id} }

func firstReply(t *testing.T, res Result) Reply {
	t.Helper()
	if len(res.Replies) == 0 {
		t.Fatal("expected a reply")
	}
	return res.Replies[0]
}

func TestFlowHappyPath(t *testing.T) {
	sess := startedSession()

	res := Apply(sess, text("⛷ Лижі"))
	if sess.Step != session.StepWaitingPhoto {
		t.Fatalf("step = %q after category", sess.Step)
	}
	if sess.Draft.Category != catalog.CategorySkis {
		t.Fatalf("category = %q", sess.Draft.Category)
	}
	if firstReply(t, res).Markup != MarkupStop {
		t.Fatal("expected stop keyboard after category")
	}

	res = Apply(sess, photo("file-1"))
	if sess.Step != session.StepWaitingPhoto {
		t.Fatal("photo must not advance the step")
	}
	if !strings.Contains(firstReply(t, res).Text, "№1") {
		t.Fatalf("expected running count, got %q", firstReply(t, res).Text)
	}

	Apply(sess, text("стоп"))
	if sess.Step != session.StepWaitingName {
		t.Fatalf("step = %q after stop", sess.Step)
	}

	res = Apply(sess, text("Atomic Redster 170"))
	if sess.Step != session.StepWaitingSize {
		t.Fatalf("step = %q after name", sess.Step)
	}
	if firstReply(t, res).Text != textSizeSkis {
		t.Fatalf("expected ski size prompt, got %q", firstReply(t, res).Text)
	}

	Apply(sess, text("170"))
	if sess.Step != session.StepWaitingDescription {
		t.Fatalf("step = %q after size", sess.Step)
	}

	Apply(sess, text("Стан чудовий, один сезон катання"))
	if sess.Step != session.StepWaitingPrice {
		t.Fatalf("step = %q after description", sess.Step)
	}

	res = Apply(sess, text("4500"))
	if sess.Step != session.StepConfirm {
		t.Fatalf("step = %q after price", sess.Step)
	}
	if res.Action != ActionPreview {
		t.Fatal("expected preview action at confirm")
	}
	if len(res.Staged) != 1 {
		t.Fatalf("staged snapshot = %v", res.Staged)
	}

	res = Apply(sess, text(btnYes))
	if res.Action != ActionCommit {
		t.Fatal("expected commit action")
	}
	if res.Draft == nil || res.Draft.Name != "Atomic Redster 170" {
		t.Fatalf("commit draft = %+v", res.Draft)
	}
	if !res.Draft.Size.Equal(decimal.NewFromInt(170)) || !res.Draft.Price.Equal(decimal.NewFromInt(4500)) {
		t.Fatalf("size/price = %s/%s", res.Draft.Size, res.Draft.Price)
	}
	if len(res.Staged) != 1 || res.Staged[0] != "file-1" {
		t.Fatalf("commit staged = %v", res.Staged)
	}
	if sess.Step != session.StepIdle || sess.Draft != nil || sess.StagedPhotos != nil {
		t.Fatalf("session not reset after commit: %+v", sess)
	}
}

func TestFlowUnknownCategoryReprompts(t *testing.T) {
	sess := startedSession()
	res := Apply(sess, text("сноуборд"))
	if sess.Step != session.StepWaitingCategory {
		t.Fatalf("step = %q, expected to stay", sess.Step)
	}
	if sess.Draft.Category != "" {
		t.Fatalf("category must stay unset, got %q", sess.Draft.Category)
	}
	if firstReply(t, res).Markup != MarkupCategories {
		t.Fatal("expected the category keyboard again")
	}
}

func TestFlowStopWithoutPhotosStays(t *testing.T) {
	sess := startedSession()
	Apply(sess, text("🥾 Черевики"))

	for _, stop := range []string{"стоп", "СТОП", "stop", "Stop", stopButton} {
		res := Apply(sess, text(stop))
		if sess.Step != session.StepWaitingPhoto {
			t.Fatalf("step = %q after %q with zero photos", sess.Step, stop)
		}
		if firstReply(t, res).Text != textNeedPhoto {
			t.Fatalf("expected photo-required message, got %q", firstReply(t, res).Text)
		}
	}
}

func TestFlowIgnoresUnrelatedTextAtPhotoStep(t *testing.T) {
	sess := startedSession()
	Apply(sess, text("⛷ Лижі"))
	res := Apply(sess, text("просто коментар"))
	if len(res.Replies) != 0 || sess.Step != session.StepWaitingPhoto {
		t.Fatalf("unrelated text must be ignored: %+v", res)
	}
}

func TestFlowNameValidationRetries(t *testing.T) {
	sess := startedSession()
	Apply(sess, text("⛷ Лижі"))
	Apply(sess, photo("f1"))
	Apply(sess, text("стоп"))

	res := Apply(sess, text("short"))
	if sess.Step != session.StepWaitingName {
		t.Fatal("invalid name must not advance the step")
	}
	if firstReply(t, res).Text == "" {
		t.Fatal("expected a validation message")
	}

	Apply(sess, text("Atomic Redster 170"))
	if sess.Step != session.StepWaitingSize {
		t.Fatal("valid retry must advance")
	}
}

func TestFlowPhotoIgnoredAtTextSteps(t *testing.T) {
	sess := startedSession()
	Apply(sess, text("⛷ Лижі"))
	Apply(sess, photo("f1"))
	Apply(sess, text("стоп"))

	res := Apply(sess, photo("f2"))
	if len(res.Replies) != 0 || sess.Step != session.StepWaitingName {
		t.Fatal("photo at name step must be ignored")
	}
	if len(sess.StagedPhotos) != 1 {
		t.Fatalf("staged = %v", sess.StagedPhotos)
	}
}

func TestFlowSizeParsing(t *testing.T) {
	sess := startedSession()
	Apply(sess, text("🥾 Черевики"))
	Apply(sess, photo("f1"))
	Apply(sess, text("стоп"))

	res := Apply(sess, text("Salomon X Pro 120"))
	if firstReply(t, res).Text != textSizeBoots {
		t.Fatalf("expected boot size prompt, got %q", firstReply(t, res).Text)
	}

	res = Apply(sess, text("сорок два"))
	if sess.Step != session.StepWaitingSize || firstReply(t, res).Text != textNumberError {
		t.Fatal("non-numeric size must re-prompt")
	}

	Apply(sess, text("27,5"))
	if sess.Step != session.StepWaitingDescription {
		t.Fatal("comma decimal must be accepted")
	}
	want, _ := decimal.NewFromString("27.5")
	if !sess.Draft.Size.Equal(want) {
		t.Fatalf("size = %s", sess.Draft.Size)
	}
}

func TestFlowPriceRejectsNegative(t *testing.T) {
	sess := startedSession()
	Apply(sess, text("⛷ Лижі"))
	Apply(sess, photo("f1"))
	Apply(sess, text("стоп"))
	Apply(sess, text("Atomic Redster 170"))
	Apply(sess, text("170"))
	Apply(sess, text("Стан чудовий, один сезон катання"))

	res := Apply(sess, text("-100"))
	if sess.Step != session.StepWaitingPrice || firstReply(t, res).Text != textNumberError {
		t.Fatal("negative price must re-prompt")
	}

	res = Apply(sess, text("0"))
	if sess.Step != session.StepConfirm || res.Action != ActionPreview {
		t.Fatal("zero price is a valid non-negative value")
	}
}

func TestFlowConfirmRejectionAborts(t *testing.T) {
	sess := startedSession()
	Apply(sess, text("⛷ Лижі"))
	Apply(sess, photo("f1"))
	Apply(sess, text("стоп"))
	Apply(sess, text("Atomic Redster 170"))
	Apply(sess, text("170"))
	Apply(sess, text("Стан чудовий, один сезон катання"))
	Apply(sess, text("4500"))

	res := Apply(sess, text(btnNo))
	if res.Action != ActionNone {
		t.Fatal("rejection must not commit")
	}
	if firstReply(t, res).Text != textCommitAborted {
		t.Fatalf("expected abort message, got %q", firstReply(t, res).Text)
	}
	if sess.Step != session.StepIdle || len(sess.StagedPhotos) != 0 {
		t.Fatalf("session not reset after abort: %+v", sess)
	}
}

func TestFlowIdleIgnoresEverything(t *testing.T) {
	sess := &session.Session{Step: session.StepIdle}
	for _, ev := range []Event{text("привіт"), photo("f1"), text(btnYes)} {
		res := Apply(sess, ev)
		if len(res.Replies) != 0 || res.Action != ActionNone || sess.Step != session.StepIdle {
			t.Fatalf("idle must ignore %+v", ev)
		}
	}
}
