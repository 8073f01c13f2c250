package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lancelocker.dev/internal/services"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		tags []string
		sort string
	)

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "List the projects the gallery would show",
		Long: `The search command applies the gallery filter to the locker document and
prints one "id<TAB>title" line per matching project. Every --tag must be
present on a project; the query words are matched as one phrase.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := services.NewProjectService(services.LoadLocker(a.cfg.Locker.Path, a.logger))
			matches := svc.Search(services.FilterOptions{
				Tags:  tags,
				Query: strings.Join(args, " "),
				Sort:  services.ParseSortKey(sort),
			})

			w := cmd.OutOrStdout()
			for _, p := range matches {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "required tag (repeatable)")
	cmd.Flags().StringVar(&sort, "sort", string(services.SortFeatured), `"Featured" or "title"`)
	return cmd
}
