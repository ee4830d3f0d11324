package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/catalog"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/pricing"
	"github.com/zedkhan/OSRSOrderBot_Go/internal/selection"
)

const embedColor = 0xC9A227

func panelEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "⚔️ OSRS Services",
		Description: "Pick a service below to get a price and open an order ticket.\n\n" +
			"🗡️ **Bossing** — kill counts for any boss\n" +
			"📈 **Leveling** — XP-based skill training\n" +
			"🏆 **Minigames** — capes, gauntlets and more\n" +
			"📜 **Quests** — any combination of quests",
		Color: embedColor,
	}
}

func panelButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "🗡️ Bossing", Style: discordgo.PrimaryButton, CustomID: "flow:bossing"},
				discordgo.Button{Label: "📈 Leveling", Style: discordgo.PrimaryButton, CustomID: "flow:leveling"},
				discordgo.Button{Label: "🏆 Minigames", Style: discordgo.PrimaryButton, CustomID: "flow:minigames"},
				discordgo.Button{Label: "📜 Quests", Style: discordgo.PrimaryButton, CustomID: "flow:quests"},
			},
		},
	}
}

func stringSelect(customID, placeholder string, options []discordgo.SelectMenuOption, minValues, maxValues int) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    customID,
				Placeholder: placeholder,
				Options:     options,
				MinValues:   &minValues,
				MaxValues:   maxValues,
			},
		},
	}
}

func categoryOptions(c *catalog.Catalog) []discordgo.SelectMenuOption {
	categories := c.Categories()
	options := make([]discordgo.SelectMenuOption, 0, len(categories))
	for _, label := range categories {
		options = append(options, discordgo.SelectMenuOption{Label: label, Value: label})
	}
	return options
}

func entryOptions(entries []domain.CatalogEntry) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(entries))
	for _, entry := range entries {
		options = append(options, discordgo.SelectMenuOption{
			Label:       entry.Name,
			Value:       entry.Name,
			Description: priceLabel(entry),
		})
	}
	return options
}

func priceLabel(entry domain.CatalogEntry) string {
	if entry.PricePKR == 0 {
		return "Quote on request"
	}
	label := pricing.FormatPKR(entry.PricePKR)
	if entry.HasUSD() {
		label += " (" + pricing.FormatUSD(*entry.PriceUSD) + ")"
	}
	return label
}

func ratesEmbed(skill domain.Skill, entries []domain.CatalogEntry) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "**%s** — %s per 100 XP\n", entry.Name, pricing.FormatPKR(entry.PricePKR))
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📈 %s Training Rates", skill),
		Description: b.String(),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Pick a bracket below to get an exact estimate"},
	}
}

func estimateEmbed(entry domain.CatalogEntry, est *pricing.Estimate) *discordgo.MessageEmbed {
	total := pricing.FormatPKR(est.TotalPKR)
	if est.TotalUSD != nil {
		total += " (" + pricing.FormatUSD(*est.TotalUSD) + ")"
	}
	return &discordgo.MessageEmbed{
		Title: "📈 Training Estimate",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bracket", Value: entry.Name, Inline: true},
			{Name: "XP", Value: fmt.Sprintf("%s → %s", pricing.FormatInt(est.StartXP), pricing.FormatInt(est.EndXP)), Inline: true},
			{Name: "Levels", Value: fmt.Sprintf("%d → %d", est.StartLevel, est.EndLevel), Inline: true},
			{Name: "XP Gained", Value: pricing.FormatInt(est.GainedXP), Inline: true},
			{Name: "Total", Value: total, Inline: true},
		},
		Color: embedColor,
	}
}

func orderEmbed(order *domain.Order) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, line := range order.Lines {
		if line.QuoteRequired {
			fmt.Fprintf(&b, "• **%s** — quote on request\n", line.Name)
			continue
		}
		total := pricing.FormatPKR(line.TotalPKR)
		if line.TotalUSD != nil {
			total += " (" + pricing.FormatUSD(*line.TotalUSD) + ")"
		}
		fmt.Fprintf(&b, "• **%s** (%s) — %s\n", line.Name, line.Detail, total)
	}

	total := pricing.FormatPKR(order.TotalPKR)
	if order.TotalUSD != nil {
		total += " (" + pricing.FormatUSD(*order.TotalUSD) + ")"
	}
	embed := &discordgo.MessageEmbed{
		Title:       "🧾 Order Summary",
		Description: b.String(),
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Customer", Value: order.Customer.Username, Inline: true},
			{Name: "Total", Value: total, Inline: true},
		},
	}
	if order.RSN != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "RSN", Value: order.RSN, Inline: true})
	}
	return embed
}

func questView(m *selection.MultiChoice, c *catalog.Catalog) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	items := m.PageItems()
	options := make([]discordgo.SelectMenuOption, 0, len(items))
	for _, name := range items {
		entry, err := c.LookupAny(name)
		opt := discordgo.SelectMenuOption{
			Label:   name,
			Value:   name,
			Default: m.IsSelected(name),
		}
		if err == nil {
			opt.Description = priceLabel(entry)
		}
		options = append(options, opt)
	}

	total := m.Total(c)
	totalText := pricing.FormatPKR(total.PKR)
	if total.USD != nil {
		totalText += " (" + pricing.FormatUSD(*total.USD) + ")"
	}
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📜 Quest Services — Page %d/%d", m.Page()+1, m.PageCount()),
		Description: fmt.Sprintf("Selected: **%d** quests\nRunning total: **%s**\n\n"+
			"Pick quests on this page, then flip pages or confirm.", len(m.Selected()), totalText),
		Color: embedColor,
	}

	components := []discordgo.MessageComponent{
		stringSelect(fmt.Sprintf("questpage:%d", m.Page()), "Select quests on this page", options, 0, len(options)),
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "◀ Prev", Style: discordgo.SecondaryButton, CustomID: "questnav:prev", Disabled: m.Page() == 0},
				discordgo.Button{Label: "Next ▶", Style: discordgo.SecondaryButton, CustomID: "questnav:next", Disabled: m.Page() == m.PageCount()-1},
				discordgo.Button{Label: "✅ Confirm Order", Style: discordgo.SuccessButton, CustomID: "questconfirm"},
			},
		},
	}
	return embed, components
}

func ticketControls(ticketID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "🔒 Close Ticket", Style: discordgo.DangerButton, CustomID: "tclose:" + ticketID},
			},
		},
	}
}

// staffControls is posted after a ticket closes; every action on it is
// staff only.
func staffControls(ticketID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "🔓 Reopen", Style: discordgo.SecondaryButton, CustomID: "treopen:" + ticketID},
				discordgo.Button{Label: "📄 Transcript", Style: discordgo.SecondaryButton, CustomID: "ttranscript:" + ticketID},
				discordgo.Button{Label: "🗑️ Delete", Style: discordgo.DangerButton, CustomID: "tdelete:" + ticketID},
			},
		},
	}
}

func confirmRow(prefix, token string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Yes", Style: discordgo.DangerButton, CustomID: prefix + ":" + token + ":yes"},
				discordgo.Button{Label: "No", Style: discordgo.SecondaryButton, CustomID: prefix + ":" + token + ":no"},
			},
		},
	}
}
