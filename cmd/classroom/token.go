package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/longregen/classroom/internal/application/usecases"
	"github.com/longregen/classroom/internal/ports"
	"github.com/spf13/cobra"
)

// tokenOutput is the /token response plus the expiry, which the HTTP API does not return
type tokenOutput struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func writeToken(w io.Writer, out *ports.IssueTokenOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&tokenOutput{
		Token:     out.Token,
		URL:       out.URL,
		ExpiresAt: time.Unix(out.ExpiresAt, 0).UTC(),
	}); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

// tokenCmd mints a token locally, the same way POST /token does
func tokenCmd() *cobra.Command {
	var name, room, role string

	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Issue a LiveKit access token",
		Example: `  classroom token --name alice --room class1 --role student`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var liveKitService ports.LiveKitService
			lk, err := newLiveKitService()
			if err != nil {
				return err
			}
			if lk != nil {
				liveKitService = lk
			}

			out, err := usecases.NewIssueToken(liveKitService, logger).Execute(cmd.Context(), &ports.IssueTokenInput{
				Name: name,
				Room: room,
				Role: role,
			})
			if err != nil {
				return err
			}

			return writeToken(os.Stdout, out)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "participant identity")
	cmd.Flags().StringVar(&room, "room", "", "room to join")
	cmd.Flags().StringVar(&role, "role", "", "participant role stored in token metadata (e.g. student, teacher)")

	return cmd
}
