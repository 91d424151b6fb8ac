package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"survey-console/internal/domain"
	"survey-console/internal/dto"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	borderColor = lipgloss.Color("#dce0e5")
	accentColor = lipgloss.Color("#8BC34A")
	mutedColor  = lipgloss.Color("#9aa0a6")
	errorColor  = lipgloss.Color("#e53935")

	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	warnStyle     = lipgloss.NewStyle().Foreground(errorColor)
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t.Render())
}

func stateLabel(state int) string {
	if state == domain.StateActive {
		return "active"
	}
	return "inactive"
}

func renderUsers(w io.Writer, list *dto.UserListResponse) {
	rows := make([][]string, 0, len(list.Users))
	for _, u := range list.Users {
		rows = append(rows, []string{
			u.ID, u.FullName, u.IdentificationType + " " + u.Identification, u.Email, u.RoleName, stateLabel(u.State),
		})
	}
	renderTable(w, []string{"ID", "NAME", "IDENTIFICATION", "EMAIL", "ROLE", "STATE"}, rows)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d user(s)", list.Total)))
}

func renderRoles(w io.Writer, list *dto.RoleListResponse) {
	rows := make([][]string, 0, len(list.Roles))
	for _, r := range list.Roles {
		names := make([]string, 0, len(r.Permissions))
		for _, p := range r.Permissions {
			names = append(names, p.Name)
		}
		rows = append(rows, []string{r.ID, r.Name, strings.Join(names, ", "), stateLabel(r.State)})
	}
	renderTable(w, []string{"ID", "NAME", "PERMISSIONS", "STATE"}, rows)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d role(s)", list.Total)))
}

func renderPermissions(w io.Writer, list *dto.PermissionListResponse) {
	rows := make([][]string, 0, len(list.Permissions))
	for _, p := range list.Permissions {
		rows = append(rows, []string{p.ID, p.Name})
	}
	renderTable(w, []string{"ID", "NAME"}, rows)
}

func renderSurveys(w io.Writer, list *dto.SurveyListResponse) {
	rows := make([][]string, 0, len(list.Surveys))
	for _, s := range list.Surveys {
		rows = append(rows, []string{
			s.ID, s.SurveyName, s.AddTerms, strconv.Itoa(s.SectionCount), strconv.Itoa(s.QuestionCount), stateLabel(s.State),
		})
	}
	renderTable(w, []string{"ID", "NAME", "TERMS", "SECTIONS", "QUESTIONS", "STATE"}, rows)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d survey(s)", list.Total)))
}

func renderSurvey(w io.Writer, s *dto.SurveyResponse) {
	fmt.Fprintln(w, titleStyle.Render(s.SurveyName), mutedStyle.Render("("+s.ID+", "+stateLabel(s.State)+")"))
	if s.IntroductionText != "" {
		fmt.Fprintln(w, s.IntroductionText)
	}
	if s.AddTerms == dto.AddTermsYes {
		fmt.Fprintln(w, mutedStyle.Render("Terms: "+s.TermsConditions))
	}
	renderStructure(w, s.Structure, -1)
}

// renderStructure lists sections and their questions; current < 0 marks none.
func renderStructure(w io.Writer, structure domain.Structure, current int) {
	rows := make([][]string, 0, structure.QuestionCount()+len(structure.Sections))
	for i, section := range structure.Sections {
		name := section.Name
		if i == current {
			name = "> " + name
		}
		if len(section.Questions) == 0 {
			rows = append(rows, []string{strconv.Itoa(i), name, "", "", ""})
			continue
		}
		for j, q := range section.Questions {
			label := ""
			if j == 0 {
				label = name
			}
			rows = append(rows, []string{strconv.Itoa(i), label, q.Description, string(q.Type), strings.Join(q.Options, " | ")})
		}
	}
	renderTable(w, []string{"#", "SECTION", "QUESTION", "TYPE", "OPTIONS"}, rows)
}

func renderEditor(w io.Writer, s *dto.EditorStateResponse) {
	fmt.Fprintln(w, titleStyle.Render("Survey "+s.SurveyID),
		selectedStyle.Render(fmt.Sprintf("section %d/%d: %s", s.Current+1, len(s.Structure.Sections), s.CurrentSection)))
	switch {
	case s.Renaming && s.PendingNew:
		fmt.Fprintln(w, warnStyle.Render("naming a new section"))
	case s.Renaming:
		fmt.Fprintln(w, warnStyle.Render("renaming the current section"))
	}
	if s.PendingDelete != nil {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("section %d is pending deletion; confirm or cancel", *s.PendingDelete)))
	}
	renderStructure(w, s.Structure, s.Current)
}
