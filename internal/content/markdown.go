package content

import (
	"fmt"
	"strings"
)

// Markdown renders the long-form sections of the page (experience, projects,
// explorations, side projects, GitHub activity and contact) as one document.
func (p Portfolio) Markdown() string {
	var b strings.Builder

	b.WriteString("# Enterprise Experience\n\n")
	for _, e := range p.Enterprises {
		fmt.Fprintf(&b, "## %s\n\n**%s** · %s · %s · `%s`\n\n", e.Name, e.Role, e.Period, e.Location, e.Type)
		writeKeyValues(&b, e.Metrics)
		b.WriteString("Key achievements:\n\n")
		writeBullets(&b, e.Impact)
		fmt.Fprintf(&b, "Technology stack: %s\n\n", codeList(e.TechStack))
	}

	b.WriteString("# Projects\n\n")
	for _, pr := range p.Projects {
		fmt.Fprintf(&b, "## %s\n\n*%s* · %s\n\n%s\n\n", pr.Name, pr.Client, pr.Scale, pr.Description)
		writeKeyValues(&b, pr.Metrics)
		b.WriteString("Technical achievements:\n\n")
		writeBullets(&b, pr.Achievements)
		fmt.Fprintf(&b, "Core technologies: %s\n\n", codeList(pr.TechStack))
	}

	b.WriteString("# Current Tech Explorations\n\n")
	for _, x := range p.Explorations {
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", x.Title, x.Status, x.Description)
	}
	b.WriteString("\n# Creative Side Projects\n\n")
	for _, s := range p.SideProjects {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n%s\n\n", s.Title, s.Description, codeList(s.Tags))
	}

	b.WriteString("# GitHub Activity\n\n")
	for _, img := range p.StatImages {
		fmt.Fprintf(&b, "- [%s](%s)\n", img.Title, img.URL)
	}
	fmt.Fprintf(&b, "- [Profile](%s)\n- [Repositories](%s?tab=repositories)\n\n", p.Profile.GitHub, p.Profile.GitHub)

	b.WriteString("# Contact\n\n")
	fmt.Fprintf(&b, "- Email: [%s](%s)\n", p.Profile.Email, p.Profile.MailtoURL())
	fmt.Fprintf(&b, "- Phone: [%s](%s)\n", p.Profile.Phone, p.Profile.TelURL())
	fmt.Fprintf(&b, "- LinkedIn: %s\n", p.Profile.LinkedIn)
	fmt.Fprintf(&b, "- GitHub: %s\n", p.Profile.GitHub)

	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func writeKeyValues(b *strings.Builder, kvs []KeyValue) {
	if len(kvs) == 0 {
		return
	}
	parts := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		parts = append(parts, fmt.Sprintf("%s: **%s**", kv.Key, kv.Value))
	}
	b.WriteString(strings.Join(parts, " · "))
	b.WriteString("\n\n")
}

func codeList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, "`"+item+"`")
	}
	return strings.Join(quoted, " ")
}
