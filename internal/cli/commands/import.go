package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"KisiKart/internal/cli/api"
	fsrepo "KisiKart/internal/cli/repo/fs"
	"KisiKart/internal/codec"
	"KisiKart/internal/config"
)

// importCardEntry — одна карточка из файла импорта. Форма совпадает
// с телом POST /api/cards.
type importCardEntry struct {
	Name        string `json:"name"`
	PhotoURL    string `json:"photoUrl,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password,omitempty"`
	BloodType   string `json:"bloodType,omitempty"`
	ExtraInfo   struct {
		Note string `json:"note"`
	} `json:"extraInfo,omitempty"`
	EmergencyContacts []codec.ContactEntry `json:"emergencyContacts,omitempty"`
	SocialMedia       []codec.SocialEntry  `json:"socialMedia,omitempty"`
}

type importCmd struct{}

func (importCmd) Name() string        { return "import" }
func (importCmd) Description() string { return "Импортировать карточки из JSON-файла (массив)" }
func (importCmd) Usage() string       { return "import <file.json>" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var entries []importCardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(Out, "Файл не содержит карточек")
		return nil
	}

	token, err := (fsrepo.SessionFSStore{}).Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/cards"

	created := 0
	for i, e := range entries {
		resp, body, err := api.PostJSON(endpoint, e, token)
		if err != nil {
			return fmt.Errorf("entry %d (%s): %w", i+1, e.Name, err)
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("session expired, run login again")
		}
		if resp.StatusCode != http.StatusOK {
			fmt.Fprintf(Out, "× %s: %s\n", e.Name, strings.TrimSpace(string(body)))
			continue
		}
		var ar addCardResponse
		if err := json.Unmarshal(body, &ar); err != nil {
			return fmt.Errorf("entry %d (%s): decode: %w", i+1, e.Name, err)
		}
		fmt.Fprintf(Out, "✓ %s  id=%s\n", e.Name, ar.ID)
		created++
	}
	fmt.Fprintf(Out, "Импортировано: %d из %d\n", created, len(entries))
	return nil
}

func init() { RegisterCmd(importCmd{}) }
