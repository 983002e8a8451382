package model

func (c *Commit) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}

// Subjects returns the subject of each commit, in order.
func Subjects(commits []*Commit) []string {
	lines := make([]string, len(commits))
	for i, c := range commits {
		lines[i] = c.Subject
	}
	return lines
}
