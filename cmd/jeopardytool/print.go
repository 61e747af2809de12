package main

import (
	"fmt"
	"io"

	"jeopardytool/internal/domain"
)

func printReport(w io.Writer, r *domain.GameReport) {
	g := r.Game
	status := "valid"
	if !r.Valid() {
		status = "invalid"
	}
	fmt.Fprintf(w, "%s  %s  [%s]\n", g.ID, g.Title, status)

	for i, c := range g.Categories {
		if c == nil {
			fmt.Fprintf(w, "  %d. <missing category>\n", i+1)
			continue
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, c.Name)
		for j, a := range c.Answers {
			if a == nil {
				fmt.Fprintf(w, "     %d) <missing answer>\n", j+1)
				continue
			}
			dj := ""
			if a.IsDoubleJeopardy() {
				dj = "  [double jeopardy]"
			}
			fmt.Fprintf(w, "     %d) %-5s %q -> %q%s\n", j+1, a.Kind(), a.Prompt(), domain.Payload(a), dj)
		}
	}

	for _, e := range r.Errors {
		fmt.Fprintf(w, "  ! %s\n", e.Error())
	}
}
