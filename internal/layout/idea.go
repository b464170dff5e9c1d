package layout

import "strings"

// ideaRules maps prompt keywords to a layout name. Rules are checked in
// order; the first keyword hit wins.
var ideaRules = []struct {
	keywords []string
	layout   string
}{
	{[]string{"blog", "article", "news"}, "blog"},
	{[]string{"social", "twitter", "feed"}, "social"},
	{[]string{"kanban", "trello", "board", "task"}, "kanban"},
	{[]string{"mail", "inbox", "message"}, "inbox"},
	{[]string{"profile", "settings", "account"}, "profile"},
	{[]string{"docs", "documentation", "wiki"}, "docs"},
	{[]string{"saas", "startup", "landing"}, "saas"},
	{[]string{"dashboard", "admin"}, "dashboard"},
}

// Suggest picks the layout whose keywords appear in the free-text prompt.
// Prompts matching nothing get DefaultName.
func Suggest(prompt string) string {
	p := strings.ToLower(prompt)
	for _, rule := range ideaRules {
		for _, kw := range rule.keywords {
			if strings.Contains(p, kw) {
				return rule.layout
			}
		}
	}
	return DefaultName
}
