package main

import (
	"fmt"
	"strings"

	"github.com/longregen/classroom/internal/application/usecases"
	"github.com/longregen/classroom/internal/llm"
	"github.com/longregen/classroom/internal/ports"
	"github.com/spf13/cobra"
)

// askCmd sends a single question through the same relay as POST /ask-ai
func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the teacher assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			assistant := usecases.NewAskAssistant(llm.NewService(llmClient), cfg.LLM.SystemPrompt, logger)
			out, err := assistant.Execute(cmd.Context(), &ports.AskAssistantInput{Question: question})
			if err != nil {
				return err
			}

			if out.Answer == "" {
				fmt.Println("(no answer)")
				return nil
			}
			fmt.Println(out.Answer)
			return nil
		},
	}
}
