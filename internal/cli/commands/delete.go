package commands

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"KisiKart/internal/cli/api"
	fsrepo "KisiKart/internal/cli/repo/fs"
	"KisiKart/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Удалить карточку по идентификатору" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	token, err := (fsrepo.SessionFSStore{}).Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/cards/" + args[0]
	resp, body, err := api.Delete(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintln(Out, "Deleted:", args[0])
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("card not found: %s", args[0])
	case http.StatusUnauthorized:
		return fmt.Errorf("session expired, run login again")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(deleteCmd{}) }
