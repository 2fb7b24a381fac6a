package bot

import (
	"context"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/skishopbot/core/logger"
	tghelpers "github.com/m3rciful/skishopbot/core/telegram/helpers"
	"github.com/m3rciful/skishopbot/skishop/catalog"
	"github.com/m3rciful/skishopbot/skishop/imagehost"
	"log/slog"
)

type inserter interface {
	Insert(ctx context.Context, p *catalog.Product) error
}

// commitProduct uploads the staged photos and, when at least one survived,
// persists the draft with the durable URLs attached. It returns the message
// for the operator. The store is never touched when every upload failed.
func commitProduct(ctx context.Context, draft *catalog.Product, staged []string, upload imagehost.UploadFunc, store inserter) (string, error) {
	urls := imagehost.UploadAll(ctx, staged, upload)
	if len(urls) == 0 {
		logger.Warn(ctx, "imagehost", "commit.no_uploads",
			slog.Int("staged", len(staged)),
		)
		return textCommitNoUploads, nil
	}

	draft.PhotoURLs = urls
	if err := store.Insert(ctx, draft); err != nil {
		return textPersistFailed, err
	}

	if len(urls) == len(staged) {
		return textCommitOK, nil
	}
	return fmt.Sprintf(textCommitPartialFmt, len(urls), len(staged)), nil
}

// commit runs the commit pipeline for a confirmed draft and reports the
// outcome. Errors are already surfaced to the operator, so the dispatch
// loop never sees them.
func (a *App) commit(c tele.Context, res Result) {
	ctx := tghelpers.BuildContext(c)
	bot := c.Bot().(*tele.Bot)

	upload := func(ctx context.Context, fileID string) (string, error) {
		file, err := bot.FileByID(fileID)
		if err != nil {
			return "", fmt.Errorf("resolve download location: %w", err)
		}
		src := fmt.Sprintf("%s/file/bot%s/%s", bot.URL, bot.Token, file.FilePath)
		return a.images.Upload(ctx, src)
	}

	outcome, err := commitProduct(ctx, res.Draft, res.Staged, upload, a.catalog)
	if err != nil {
		logger.Error(ctx, "catalog", "commit.persist_failed",
			slog.String("err", err.Error()),
		)
	}
	a.reply(c, Reply{Text: outcome, Markup: MarkupRemove})
}
