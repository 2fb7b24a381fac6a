package helpers

import (
	"log/slog"

	"github.com/m3rciful/skishopbot/core/logger"

	tele "gopkg.in/telebot.v4"
)

// SendText sends raw text (no parse mode) to the current recipient.
func SendText(c tele.Context, text string, opts ...*tele.SendOptions) error {
	if len(opts) > 0 && opts[0] != nil {
		return c.Send(text, opts[0])
	}
	return c.Send(text)
}

// SendMD sends a message with Markdown parse mode and optional reply markup.
func SendMD(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	var rm *tele.ReplyMarkup
	if len(markup) > 0 {
		rm = markup[0]
	}
	return SendText(c, text, &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: rm})
}

// NotifyBestEffort sends text and only logs a delivery failure. Used where a
// send error must never bubble up into the dispatch loop.
func NotifyBestEffort(c tele.Context, text string, markup ...*tele.ReplyMarkup) {
	var err error
	if len(markup) > 0 && markup[0] != nil {
		err = c.Send(text, &tele.SendOptions{ReplyMarkup: markup[0]})
	} else {
		err = c.Send(text)
	}
	if err != nil {
		logger.Warn(BuildContext(c), "tg", "send.failed",
			slog.String("err", err.Error()),
		)
	}
}
