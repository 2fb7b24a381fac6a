// Package bot wires the product entry conversation to the Telegram
// transport: commands, step routing, previews, and the commit pipeline.
package bot

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/skishopbot/core/logger"

	coretelegram "github.com/m3rciful/skishopbot/core/telegram"
	"github.com/m3rciful/skishopbot/core/telegram/commands"
	tghelpers "github.com/m3rciful/skishopbot/core/telegram/helpers"
	"github.com/m3rciful/skishopbot/core/telegram/keyboard"
	"github.com/m3rciful/skishopbot/core/telegram/middleware"
	"github.com/m3rciful/skishopbot/skishop/catalog"
	"github.com/m3rciful/skishopbot/skishop/imagehost"
	"github.com/m3rciful/skishopbot/skishop/session"
)

// App owns the bot's domain services and session store.
type App struct {
	cfg      *Config
	sessions *session.Store
	catalog  *catalog.Store
	images   *imagehost.Client
}

// New assembles the application over an open database handle.
func New(cfg *Config, db *sqlx.DB) *App {
	return &App{
		cfg:      cfg,
		sessions: session.NewStore(),
		catalog:  catalog.NewStore(db),
		images:   imagehost.NewClient(cfg.ImageHost),
	}
}

// RunOptions builds the full transport wiring for coretelegram.RunTelegram.
func (a *App) RunOptions() coretelegram.RunOptions {
	reg := coretelegram.NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: a.handleStart, Description: "Довідка", Aliases: []string{"help"}})
	reg.RegisterCommand("/help", commands.Command{Handler: a.handleStart, Description: "Довідка", Hidden: true})
	reg.RegisterCommand("/add", commands.Command{Handler: a.handleAdd, Description: "Додати новий товар"})
	reg.RegisterCommand("/all", commands.Command{Handler: a.handleAll, Description: "Показати всі товари"})
	reg.RegisterCommand("/cancel", commands.Command{Handler: a.handleCancel, Description: "Скасувати поточну дію"})

	routes := make([]coretelegram.Route, 0, len(reg.Commands())+2)
	for name, cmd := range reg.Commands() {
		routes = append(routes, coretelegram.Route{Endpoint: name, Handler: cmd.Handler})
	}
	routes = append(routes,
		coretelegram.Route{Endpoint: tele.OnText, Handler: a.handleText},
		coretelegram.Route{Endpoint: tele.OnPhoto, Handler: a.handlePhoto},
	)

	// Authorization precedes all dispatch: anyone but the operator gets a
	// fixed rejection and no session is ever created for them.
	middlewares := []coretelegram.Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
		{Name: "logger", Use: middleware.LoggerMiddleware},
		{Name: "admin", Use: middleware.AdminOnlyMiddleware(middleware.AdminOptions{
			AdminID: a.cfg.Core.Telegram.AdminID,
			OnReject: func(c tele.Context) error {
				tghelpers.NotifyBestEffort(c, textNotAdmin)
				return nil
			},
		})},
	}

	return coretelegram.RunOptions{
		Config:      &a.cfg.Core,
		Registry:    reg,
		Middlewares: middlewares,
		Routes:      routes,
	}
}

func (a *App) handleStart(c tele.Context) error {
	sess := a.sessions.Get(c.Chat().ID)
	sess.FinishDraft()
	a.reply(c, Reply{Text: textHelp, Markup: MarkupRemove})
	return nil
}

func (a *App) handleCancel(c tele.Context) error {
	a.sessions.Remove(c.Chat().ID)
	a.reply(c, Reply{Text: textCanceled, Markup: MarkupRemove})
	return nil
}

func (a *App) handleAdd(c tele.Context) error {
	sess := a.sessions.Get(c.Chat().ID)
	if sess.Step != session.StepIdle {
		// Mid-flow "/add" is ordinary text input for the current step.
		return a.dispatch(c, Event{Kind: EventText, Text: c.Text()})
	}
	sess.StartDraft()
	a.reply(c, Reply{Text: textChooseCategory, Markup: MarkupCategories})
	return nil
}

// handleAll lists every stored product as a preview, independent of the
// conversation step.
func (a *App) handleAll(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	products, err := a.catalog.ListAll(ctx)
	if err != nil {
		a.reply(c, Reply{Text: textListFailed})
		return nil
	}
	for i := range products {
		p := &products[i]
		if err := sendPreview(c, p.Summary(), urlPhotos(p.PhotoURLs)); err != nil {
			tghelpers.NotifyBestEffort(c, textListFailed)
			return nil
		}
	}
	return nil
}

func (a *App) handleText(c tele.Context) error {
	sess := a.sessions.Get(c.Chat().ID)
	if sess.Step == session.StepIdle {
		return nil
	}
	return a.dispatch(c, Event{Kind: EventText, Text: c.Text()})
}

func (a *App) handlePhoto(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Photo == nil {
		return nil
	}
	// telebot resolves the photo to its highest-resolution variant.
	return a.dispatch(c, Event{Kind: EventPhoto, PhotoID: msg.Photo.FileID})
}

// dispatch applies one event to the chat's session and executes the
// resulting effects in order: preview, replies, commit.
func (a *App) dispatch(c tele.Context, ev Event) error {
	sess := a.sessions.Get(c.Chat().ID)
	res := Apply(sess, ev)

	if res.Action == ActionPreview {
		if err := sendPreview(c, res.Draft.Summary(), stagedPhotos(res.Staged)); err != nil {
			logger.Warn(tghelpers.BuildContext(c), "tg", "preview.send_failed",
				slog.String("err", err.Error()),
			)
		}
	}
	for _, r := range res.Replies {
		a.reply(c, r)
	}
	if res.Action == ActionCommit {
		a.commit(c, res)
	}
	return nil
}

// reply sends one outbound message with its keyboard, logging delivery
// failures instead of raising them.
func (a *App) reply(c tele.Context, r Reply) {
	switch r.Markup {
	case MarkupRemove:
		tghelpers.NotifyBestEffort(c, r.Text, keyboard.RemoveKeyboard())
	case MarkupCategories:
		tghelpers.NotifyBestEffort(c, r.Text, keyboard.ReplyButtons(catalog.CategoryLabels()))
	case MarkupStop:
		tghelpers.NotifyBestEffort(c, r.Text, keyboard.StickyReplyButtons([]string{stopButton}))
	case MarkupConfirm:
		tghelpers.NotifyBestEffort(c, r.Text, keyboard.ReplyButtons([]string{btnYes, btnNo}))
	default:
		tghelpers.NotifyBestEffort(c, r.Text)
	}
}
