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

type addCardRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password,omitempty"`
	BloodType   string `json:"bloodType,omitempty"`
}

type addCardResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

type addCmd struct{}

func (addCmd) Name() string { return "add" }
func (addCmd) Description() string {
	return "Создать карточку (опционально сразу задать телефон и пароль владельца)"
}
func (addCmd) Usage() string { return "add <name> [<phone> [<password>]]" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return ErrUsage
	}
	req := addCardRequest{Name: args[0]}
	if len(args) >= 2 {
		if args[1] == "" {
			return ErrUsage
		}
		req.PhoneNumber = args[1]
	}
	if len(args) == 3 {
		// пароль допустим, только если указан телефон
		req.Password = args[2]
	}

	token, err := (fsrepo.SessionFSStore{}).Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/cards"
	resp, body, err := api.PostJSON(endpoint, req, token)
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
	var ar addCardResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:   %s\n", ar.ID)
	fmt.Fprintf(Out, "  name: %s\n", req.Name)
	fmt.Fprintf(Out, "  qr:   %s/%s\n", strings.TrimRight(cfg.PublicBaseURL, "/"), ar.ID)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
