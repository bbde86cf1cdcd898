package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fogoseda/party-api/internal/entities"
	"github.com/fogoseda/party-api/internal/orchestrators/card"
)

var cardSessionID string

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Play the card variant interactively",
	Long:  `Start or resume a truth-or-dare card session. Commands: verdade, desafio, sortear, trocar, +1, -1, nivel, modo, tema, palavra, bloquear, desbloquear, norepeat, historico, limpar, reset, link, aplicar, sair.`,
	RunE:  runCard,
}

func init() {
	cardCmd.Flags().StringVar(&cardSessionID, "session", "", "session ID to resume (new when empty)")
}

func runCard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	d, err := buildDeps()
	if err != nil {
		return err
	}

	svc, err := card.NewOrchestrator(&card.Config{
		SessionRepo:    d.cardRepo,
		Library:        d.library,
		Renderer:       d.renderer,
		Roller:         d.roller,
		IDGenerator:    newIDGen("sess"),
		Clock:          d.clock,
		Balance:        d.balance,
		CollectionRepo: d.collections,
		OwnerID:        d.cfg.OwnerID,
	})
	if err != nil {
		return err
	}

	sessionID := cardSessionID
	if sessionID == "" {
		out, err := svc.NewSession(ctx, &card.NewSessionInput{})
		if err != nil {
			return err
		}
		sessionID = out.Session.ID
	}
	fmt.Printf("Sessão: %s\n", sessionID)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		command, rest := fields[0], strings.TrimSpace(strings.TrimPrefix(line, fields[0]))

		if command == "sair" {
			return nil
		}
		if err := runCardCommand(ctx, svc, sessionID, command, rest); err != nil {
			fmt.Printf("erro: %v\n", err)
		}
	}
}

func runCardCommand(ctx context.Context, svc card.Service, sessionID, command, arg string) error {
	switch command {
	case "verdade", "desafio", "sortear":
		kind := card.DrawTruth
		switch command {
		case "desafio":
			kind = card.DrawDare
		case "sortear":
			kind = card.DrawRandom
		}
		out, err := svc.Draw(ctx, &card.DrawInput{SessionID: sessionID, Kind: kind})
		if err != nil {
			return err
		}
		fmt.Println(out.Marked)

	case "trocar":
		out, err := svc.Swap(ctx, &card.SwapInput{SessionID: sessionID})
		if err != nil {
			return err
		}
		fmt.Println(out.Marked)

	case "+1", "-1":
		delta := 1
		if command == "-1" {
			delta = -1
		}
		out, err := svc.ApplyFeedback(ctx, &card.ApplyFeedbackInput{SessionID: sessionID, Delta: delta})
		if err != nil {
			return err
		}
		fmt.Printf("nota de %s: %d\n", out.ItemID, out.Score)

	case "nivel":
		_, err := svc.SetLevel(ctx, &card.SetLevelInput{SessionID: sessionID, Level: entities.Level(arg)})
		return err

	case "modo":
		_, err := svc.SetMode(ctx, &card.SetModeInput{SessionID: sessionID, Mode: entities.Mode(arg)})
		return err

	case "tema":
		_, err := svc.UpdateSettings(ctx, &card.UpdateSettingsInput{SessionID: sessionID, Theme: &arg})
		return err

	case "palavra":
		_, err := svc.SetKeyword(ctx, &card.SetKeywordInput{SessionID: sessionID, Keyword: arg})
		return err

	case "filtros":
		var filters entities.BanFilters
		for _, token := range strings.Fields(arg) {
			switch token {
			case "oral":
				filters.NoOral = true
			case "dom":
				filters.NoDom = true
			case "nudez":
				filters.NoNudez = true
			default:
				return fmt.Errorf("filtro desconhecido: %s (use oral, dom, nudez)", token)
			}
		}
		_, err := svc.SetFilters(ctx, &card.SetFiltersInput{SessionID: sessionID, Filters: filters})
		return err

	case "bloquear":
		_, err := svc.BlockWord(ctx, &card.BlockWordInput{SessionID: sessionID, Word: arg})
		return err

	case "desbloquear":
		_, err := svc.UnblockWord(ctx, &card.UnblockWordInput{SessionID: sessionID, Word: arg})
		return err

	case "norepeat":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("norepeat espera um número: %w", err)
		}
		out, err := svc.SetNoRepeat(ctx, &card.SetNoRepeatInput{SessionID: sessionID, NoRepeat: n})
		if err != nil {
			return err
		}
		fmt.Printf("janela de repetição: %d\n", out.Session.NoRepeat)

	case "historico":
		out, err := svc.HistoryText(ctx, &card.HistoryTextInput{SessionID: sessionID})
		if err != nil {
			return err
		}
		fmt.Print(out.Text)

	case "limpar":
		_, err := svc.ClearHistory(ctx, &card.ClearHistoryInput{SessionID: sessionID})
		return err

	case "reset":
		_, err := svc.ResetRepetition(ctx, &card.ResetRepetitionInput{SessionID: sessionID})
		return err

	case "link":
		out, err := svc.ShareLink(ctx, &card.ShareLinkInput{SessionID: sessionID})
		if err != nil {
			return err
		}
		fmt.Println(out.Link)

	case "aplicar":
		_, err := svc.ApplyShareLink(ctx, &card.ApplyShareLinkInput{SessionID: sessionID, Link: arg})
		return err

	default:
		return fmt.Errorf("comando desconhecido: %s", command)
	}
	return nil
}
