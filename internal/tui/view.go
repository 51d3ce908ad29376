package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the three-column console: queue, editor, suggestions + cart.
func (m Model) View() string {
	if m.quit {
		return ""
	}
	if m.loading {
		return fmt.Sprintf("\n  %s Loading the validation queue...\n", m.spin.View())
	}

	columnWidth := 38
	if m.width > 130 {
		columnWidth = (m.width - 10) / 3
	}

	left := m.panel(focusQueue, columnWidth, m.renderQueue())
	var middle string
	if m.session.BatchMode() {
		middle = m.renderEditorColumn(columnWidth, m.renderBatchEditor())
	} else {
		middle = m.renderEditorColumn(columnWidth, m.renderEditor())
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.panel(focusSuggestions, columnWidth, m.renderSuggestions()),
		m.panel(focusStaging, columnWidth, m.renderStaging()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, middle, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

func (m Model) panel(area focusArea, width int, content string) string {
	style := panelStyle
	if m.focus == area {
		style = focusedPanelStyle
	}
	return style.Width(width).Render(content)
}

func (m Model) renderQueue() string {
	queue := m.session.Queue()
	lines := []string{titleStyle.Render(fmt.Sprintf("Queue (%d pending)", len(queue)))}

	if len(queue) == 0 {
		lines = append(lines, subtleStyle.Render("Nothing to validate."))
		return strings.Join(lines, "\n")
	}

	selected, hasSelection := m.session.Selected()
	for i, item := range queue {
		prefix := "  "
		if i == m.queueCursor && m.focus == focusQueue {
			prefix = "> "
		}

		mark := "[ ]"
		if m.session.InBatch(item.ID) {
			mark = batchMarkStyle.Render("[x]")
		}

		score := confidenceStyle(item.Confidence).Render(fmt.Sprintf("%3.0f%%", item.Confidence*100))
		line := fmt.Sprintf("%s%s %s %s", prefix, mark, score, truncate(item.NormalizedName, 24))
		if hasSelection && item.ID == selected.ID {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "", subtleStyle.Render("[space] batch  [a] all  [x] none  [s] skip"))
	return strings.Join(lines, "\n")
}

func (m Model) renderEditor() string {
	item, ok := m.session.Selected()
	if !ok {
		return titleStyle.Render("Item Editor") + "\n" +
			subtleStyle.Render("Select an item from the queue to start validating.")
	}

	form := m.session.Form()
	sections := []string{
		titleStyle.Render("Item Editor"),
		subtleStyle.Render("original: ") + item.OriginalName,
		subtleStyle.Render("client:   ") + item.CNPJ,
		"",
		subtleStyle.Render("AI rationale: ") + truncate(item.Reasoning, 70),
		"",
		m.fieldLabel(focusName, "Name"),
		m.nameInput.View(),
		"",
		m.fieldLabel(focusCategory, "Category"),
		m.renderCategoryList(form.CategoryID),
		"",
		m.fieldLabel(focusSubcategory, "Subcategory"),
		m.renderSubcategoryList(form.CategoryID, form.SubcategoryID),
		"",
		m.renderSaveHint(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderEditorColumn(width int, content string) string {
	style := panelStyle
	switch m.focus {
	case focusName, focusCategory, focusSubcategory:
		style = focusedPanelStyle
	}
	return style.Width(width).Render(content)
}

func (m Model) renderBatchEditor() string {
	form := m.session.Form()
	sections := []string{
		titleStyle.Render(fmt.Sprintf("Batch Classification (%d items)", len(m.session.BatchIDs()))),
		subtleStyle.Render("One category applies to every selected item; names stay unchanged."),
		"",
		m.fieldLabel(focusCategory, "Category"),
		m.renderCategoryList(form.CategoryID),
		"",
		m.fieldLabel(focusSubcategory, "Subcategory"),
		m.renderSubcategoryList(form.CategoryID, form.SubcategoryID),
		"",
	}
	if m.session.CanBatchSave() && !m.session.IsSaving() {
		sections = append(sections, successStyle.Render("[B] classify batch"))
	} else {
		sections = append(sections, subtleStyle.Render("choose category and subcategory to enable batch save"))
	}
	return strings.Join(sections, "\n")
}

func (m Model) fieldLabel(area focusArea, label string) string {
	if m.focus == area {
		return selectedStyle.Render(label)
	}
	return subtleStyle.Render(label)
}

func (m Model) renderCategoryList(chosenID string) string {
	categories := m.session.Categories()
	if len(categories) == 0 {
		return subtleStyle.Render("no categories loaded")
	}

	lines := make([]string, 0, len(categories))
	for i, cat := range categories {
		prefix := "  "
		if i == m.catCursor && m.focus == focusCategory {
			prefix = "> "
		}
		line := prefix + cat.Name
		if cat.ID == chosenID {
			line = selectedStyle.Render(line + " ✓")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSubcategoryList(categoryID, chosenID string) string {
	if categoryID == "" {
		return subtleStyle.Render("choose a category first")
	}
	subcats := m.session.SubcategoriesFor(categoryID)
	if len(subcats) == 0 {
		return subtleStyle.Render("no subcategories for this category")
	}

	lines := make([]string, 0, len(subcats))
	for i, sub := range subcats {
		prefix := "  "
		if i == m.subCursor && m.focus == focusSubcategory {
			prefix = "> "
		}
		line := prefix + sub.Name
		if sub.ID == chosenID {
			line = selectedStyle.Render(line + " ✓")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSaveHint() string {
	switch {
	case m.session.IsSaving():
		return fmt.Sprintf("%s saving...", m.spin.View())
	case m.session.CanSave():
		return successStyle.Render("[S] add to cart")
	default:
		return subtleStyle.Render("fill name, category and subcategory to enable saving")
	}
}

func (m Model) renderSuggestions() string {
	lines := []string{titleStyle.Render("AI Suggestions")}

	switch {
	case m.session.SuggestionsLoading():
		lines = append(lines, fmt.Sprintf("%s fetching suggestions...", m.spin.View()))
	case len(m.session.Suggestions()) == 0:
		lines = append(lines, subtleStyle.Render("No suggestions for this item."))
	default:
		for i, sug := range m.session.Suggestions() {
			prefix := "  "
			if i == m.sugCursor && m.focus == focusSuggestions {
				prefix = "> "
			}
			score := confidenceStyle(sug.Similarity).Render(fmt.Sprintf("%3.0f%%", sug.Similarity*100))
			lines = append(lines,
				fmt.Sprintf("%s%s %s", prefix, score, truncate(sug.Name, 26)),
				subtleStyle.Render(fmt.Sprintf("      %s → %s", sug.CategoryName, sug.SubcategoryName)),
			)
		}
		lines = append(lines, "", subtleStyle.Render("[enter] apply to editor"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStaging() string {
	staging := m.session.Staging()
	lines := []string{titleStyle.Render(fmt.Sprintf("Cart (%d staged)", len(staging)))}

	if len(staging) == 0 {
		lines = append(lines, subtleStyle.Render("Saved items wait here until commit."))
		return strings.Join(lines, "\n")
	}

	for i, item := range staging {
		prefix := "  "
		if i == m.stagingCursor && m.focus == focusStaging {
			prefix = "> "
		}
		lines = append(lines,
			prefix+truncate(item.StagedName, 30),
			subtleStyle.Render(fmt.Sprintf("      %s → %s", item.StagedCategoryName, item.StagedSubcategoryName)),
		)
	}

	hint := "[enter] revert  [C] commit cart"
	if m.session.IsCommitting() {
		hint = "committing..."
	}
	lines = append(lines, "", subtleStyle.Render(hint))
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var status string
	switch {
	case m.isError && m.toast != "":
		status = errorStyle.Render(m.toast)
	case m.toast != "":
		status = successStyle.Render(m.toast)
	}

	help := subtleStyle.Render("[tab] focus  [enter] pick  [S] cart  [B] batch  [C] commit  [r] reload  [q] quit")
	if status == "" {
		return help
	}
	return status + "\n" + help
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	if limit <= 3 {
		return text[:limit]
	}
	return text[:limit-3] + "..."
}
