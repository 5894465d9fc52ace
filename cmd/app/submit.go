package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/TemirB/smm-orders/internal/application/service"
	"github.com/TemirB/smm-orders/internal/domain"
	"github.com/TemirB/smm-orders/internal/report"
)

type submitOptions struct {
	link         string
	commentsFile string
	services     []string
	commentPanel string
	noComments   bool
}

func newSubmitCmd(verbose *bool) *cobra.Command {
	var opts submitOptions

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Place one batch of orders and print the report",
		Long: `Place one batch of orders for a video link without the web form.

Comments are read one per line from --comments-file ("-" reads stdin).
Without --service every catalog service is ordered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := newApp(logger)
			if err != nil {
				return err
			}
			req, err := opts.request(cmd.InOrStdin(), a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			outcomes, err := a.service.Submit(cmd.Context(), req, func(st report.Step) {
				row := report.NewRow(st.Outcome)
				fmt.Fprintf(cmd.ErrOrStderr(), "Processing: %s (ID: %d)... %s [%d%%]\n",
					row.Service, st.Outcome.Spec.ServiceID, row.Status, st.Percent())
			})
			if err != nil {
				return err
			}

			rows := report.Rows(outcomes)
			if err := report.WriteText(out, rows); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nDone! All requests processed (%d/%d succeeded).\n", report.Succeeded(rows), len(rows))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.link, "link", "", "Video link to order for")
	f.StringVar(&opts.commentsFile, "comments-file", "", `File with one comment per line, "-" for stdin`)
	f.StringArrayVar(&opts.services, "service", nil, "Catalog service key to order (repeatable)")
	f.StringVar(&opts.commentPanel, "comment-panel", string(domain.PanelMTP), "Panel for the comment order ("+panelKeys()+")")
	f.BoolVar(&opts.noComments, "no-comments", false, "Skip the comment order")
	_ = cmd.MarkFlagRequired("link")
	return cmd
}

func (o submitOptions) request(stdin io.Reader, a *app) (service.Request, error) {
	req := service.Request{
		VideoLink:     o.link,
		OrderComments: !o.noComments,
		Services:      o.services,
	}

	if req.OrderComments {
		p, ok := domain.ParsePanel(o.commentPanel)
		if !ok {
			return service.Request{}, fmt.Errorf("%w: %q", domain.ErrUnknownPanel, o.commentPanel)
		}
		req.CommentPanel = p

		raw, err := readComments(o.commentsFile, stdin)
		if err != nil {
			return service.Request{}, err
		}
		req.RawComments = raw
	}

	if len(req.Services) == 0 {
		for _, spec := range a.catalog.Services() {
			req.Services = append(req.Services, spec.Key)
		}
	}
	return req, nil
}

func readComments(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return "", errors.New("--comments-file is required unless --no-comments is set")
	case "-":
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read comments: %w", err)
	}
	return string(b), nil
}
