package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"KisiKart/internal/cli/api"
	fsrepo "KisiKart/internal/cli/repo/fs"
	"KisiKart/internal/config"
)

type listCardEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	CreatedAt   string `json:"createdAt"`
}

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать все карточки" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := (fsrepo.SessionFSStore{}).Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/cards"
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("session expired, run login again")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var cards []listCardEntry
	if err := json.Unmarshal(body, &cards); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(cards) == 0 {
		fmt.Fprintln(Out, "Нет карточек")
		return nil
	}
	for _, c := range cards {
		fmt.Fprintf(Out, "- %s  name=%s  phone=%s\n", c.ID, c.Name, c.PhoneNumber)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(cards))
	return nil
}

func init() { RegisterCmd(listCmd{}) }
