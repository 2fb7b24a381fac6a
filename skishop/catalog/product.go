// Package catalog holds the product model and its Postgres store.
package catalog

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/m3rciful/skishopbot/core/telegram/format"
)

// Category enumerates the two product kinds the shop sells.
type Category string

const (
	CategorySkis  Category = "skis"
	CategoryBoots Category = "boots"
)

const (
	labelSkis  = "⛷ Лижі"
	labelBoots = "🥾 Черевики"
)

// FriendlyName returns the operator-facing label for the category.
func (c Category) FriendlyName() string {
	switch c {
	case CategorySkis:
		return labelSkis
	case CategoryBoots:
		return labelBoots
	}
	return "❓ Невідомо"
}

// CategoryLabels lists the keyboard labels in presentation order.
func CategoryLabels() []string {
	return []string{labelSkis, labelBoots}
}

// CategoryFromLabel resolves a keyboard label back to its category.
func CategoryFromLabel(label string) (Category, bool) {
	switch label {
	case labelSkis:
		return CategorySkis, true
	case labelBoots:
		return CategoryBoots, true
	}
	return "", false
}

// Product is a catalog entry. Size is centimeters for skis and an EU shoe
// size for boots. PhotoURLs stays empty until a commit uploads the staged
// photos.
type Product struct {
	ID          int64           `db:"id"`
	Category    Category        `db:"category"`
	Name        string          `db:"name"`
	Size        decimal.Decimal `db:"size"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	PhotoURLs   pq.StringArray  `db:"photo_urls"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Summary renders the Markdown preview caption shown to the operator.
// User-entered fields are escaped so stray markup does not break rendering.
func (p *Product) Summary() string {
	return fmt.Sprintf(
		"📦 *Категорія:* %s\n"+
			"🏷 *Назва:* %s\n"+
			"📏 *Розмір:* %s\n"+
			"📄 *Опис:* %s\n"+
			"💰 *Ціна:* %s грн\n",
		p.Category.FriendlyName(),
		format.EscapeMarkdown(p.Name),
		p.Size.String(),
		format.EscapeMarkdown(p.Description),
		p.Price.String(),
	)
}
