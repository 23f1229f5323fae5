package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Store a resume file in the database",
	Long:  "Validates a resume JSON file and stores it for a user, creating the table if needed. Pass --resume-id to replace an existing record.",
	RunE:  runImport,
}

var (
	importInput  string
	importUserID string
	importTitle  string
	importID     string
)

func init() {
	importCmd.Flags().StringVarP(&importInput, "in", "i", "", "Path to resume JSON file (required)")
	importCmd.Flags().StringVarP(&importUserID, "user-id", "u", "", "Owner user ID (required)")
	importCmd.Flags().StringVarP(&importTitle, "title", "t", "", "Record title (default: the resume's name)")
	importCmd.Flags().StringVar(&importID, "resume-id", "", "Existing record to replace")

	if err := importCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := importCmd.MarkFlagRequired("user-id"); err != nil {
		panic(fmt.Sprintf("failed to mark user-id flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(importUserID)
	if err != nil {
		return fmt.Errorf("invalid user-id: %w", err)
	}
	id := uuid.Nil
	if importID != "" {
		if id, err = uuid.Parse(importID); err != nil {
			return fmt.Errorf("invalid resume-id: %w", err)
		}
	}

	resume, err := readResume(importInput)
	if err != nil {
		return err
	}
	title := importTitle
	if title == "" {
		title = resume.PersonalInfo.Name
	}

	database, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	id, err = database.SaveResume(ctx, id, userID, title, resume)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Stored resume %s\n", id)
	return nil
}
