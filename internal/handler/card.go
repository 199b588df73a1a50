package handler

import (
	"fmt"
	"strings"

	"hustlex/internal/domain"
	"hustlex/internal/i18n"
	"hustlex/internal/service"

	tele "gopkg.in/telebot.v3"
)

// renderCard formats the profile card as Telegram HTML
func renderCard(view service.View) string {
	esc := service.EscapeHTML

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", esc(view.AppTitle))
	fmt.Fprintf(&b, "%s: %s\n\n", esc(view.LanguageLabel), esc(view.Language.DisplayName()))

	fmt.Fprintf(&b, "<b>%s</b>\n", esc(view.ProfileTitle))
	for _, field := range view.Fields {
		value := esc(field.Value)
		if field.Value == "" {
			value = "<i>" + esc(field.Placeholder) + "</i>"
		}
		marker := ""
		if field.Editable {
			marker = " ✏️"
		}
		fmt.Fprintf(&b, "%s: %s%s\n", esc(field.Label), value, marker)
	}

	fmt.Fprintf(&b, "\n<b>%s</b>\n", esc(view.CurrentData))
	for _, line := range view.Preview {
		fmt.Fprintf(&b, "%s %s\n", esc(line.Label), esc(line.Value))
	}

	fmt.Fprintf(&b, "\n<i>%s</i>\n", esc(view.FooterNote))
	fmt.Fprintf(&b, "<b>%s:</b> %s\n", esc(view.UpdateLabel), esc(view.UpdateUsage))

	fmt.Fprintf(&b, "\n<b>%s</b>\n", esc(view.AssistantTitle))
	quoted := make([]string, len(view.Hints))
	for i, hint := range view.Hints {
		quoted[i] = "<code>" + esc(hint) + "</code>"
	}
	fmt.Fprintf(&b, "%s %s", esc(view.HintsPrefix), strings.Join(quoted, " · "))

	return b.String()
}

// cardMarkup returns the card keyboard: language selector, edit buttons and cancel while editing
func cardMarkup(view service.View) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{languageRow(markup, view.Language)}

	editRow := tele.Row{}
	editing := false
	for _, field := range view.Fields {
		editRow = append(editRow, markup.Data("✏️ "+view.EditLabel+": "+field.Label, btnEdit.Unique, string(field.Field)))
		editing = editing || field.Editable
	}
	rows = append(rows, editRow)

	if editing {
		rows = append(rows, markup.Row(btnCancel))
	}

	markup.Inline(rows...)
	return markup
}

// languageMarkup returns the standalone language selector
func languageMarkup(current domain.Language) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(languageRow(markup, current))
	return markup
}

func languageRow(markup *tele.ReplyMarkup, current domain.Language) tele.Row {
	row := tele.Row{}
	for _, lang := range domain.Languages {
		text := lang.DisplayName()
		if lang == current {
			text = "• " + text
		}
		row = append(row, markup.Data(text, btnLanguage.Unique, string(lang)))
	}
	return row
}

// promptMarkup forces a reply to the edit prompt
func promptMarkup(placeholder string) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		ForceReply:  true,
		Placeholder: placeholder,
	}
}

// parseForm splits "/update name; contact; age" into a profile form
func parseForm(payload string) domain.ProfileForm {
	parts := strings.SplitN(payload, ";", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return domain.ProfileForm{
		Name:    parts[0],
		Contact: parts[1],
		Age:     parts[2],
	}
}

// formatErrors lists validation errors in form order
func formatErrors(dict *i18n.Dictionary, errs map[domain.Field]string) string {
	var lines []string
	for _, field := range []domain.Field{domain.FieldName, domain.FieldContact, domain.FieldAge} {
		if msg, ok := errs[field]; ok {
			lines = append(lines, "• "+dict.Labels.For(field)+": "+msg)
		}
	}
	return strings.Join(lines, "\n")
}
