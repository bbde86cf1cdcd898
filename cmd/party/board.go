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
	"github.com/fogoseda/party-api/internal/orchestrators/board"
)

var (
	boardGameID  string
	boardPlayers []string
)

var playerColors = []string{"vermelho", "azul", "verde", "amarelo", "roxo", "laranja"}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Play the board variant interactively",
	Long:  `Start or resume a board game. Commands: rolar, carta, dispensar, executar, recusar, +1, -1, jogador, estado, reiniciar, sair.`,
	RunE:  runBoard,
}

func init() {
	boardCmd.Flags().StringVar(&boardGameID, "game", "", "game ID to resume (new when empty)")
	boardCmd.Flags().StringSliceVar(&boardPlayers, "players", nil, "player names for a new game")
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	d, err := buildDeps()
	if err != nil {
		return err
	}

	svc, err := board.NewOrchestrator(&board.Config{
		GameRepo:       d.boardRepo,
		Library:        d.library,
		Renderer:       d.renderer,
		Roller:         d.roller,
		IDGenerator:    newIDGen("game"),
		Clock:          d.clock,
		Balance:        d.balance,
		CollectionRepo: d.collections,
		OwnerID:        d.cfg.OwnerID,
	})
	if err != nil {
		return err
	}

	gameID := boardGameID
	if gameID == "" {
		if len(boardPlayers) == 0 {
			return fmt.Errorf("--players is required for a new game")
		}
		setups := make([]board.PlayerSetup, 0, len(boardPlayers))
		for i, name := range boardPlayers {
			setups = append(setups, board.PlayerSetup{
				Name:  name,
				Color: playerColors[i%len(playerColors)],
			})
		}
		out, err := svc.NewGame(ctx, &board.NewGameInput{Players: setups})
		if err != nil {
			return err
		}
		gameID = out.Session.ID
	}
	fmt.Printf("Jogo: %s\n", gameID)

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
		if err := runBoardCommand(ctx, svc, gameID, command, rest); err != nil {
			fmt.Printf("erro: %v\n", err)
		}
	}
}

func runBoardCommand(ctx context.Context, svc board.Service, gameID, command, arg string) error {
	switch command {
	case "rolar":
		out, err := svc.RollDice(ctx, &board.RollDiceInput{GameID: gameID})
		if err != nil {
			return err
		}
		if out.Blocked {
			fmt.Println("rodada perdida (bloqueado)")
			return nil
		}
		fmt.Printf("rolou %d, parou na casa %d\n", out.Roll, out.TileID)
		printState(out.Session)

	case "carta":
		index, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("carta espera o número da opção: %w", err)
		}
		out, err := svc.ChooseCard(ctx, &board.ChooseCardInput{GameID: gameID, Index: index - 1})
		if err != nil {
			return err
		}
		printState(out.Session)

	case "dispensar":
		out, err := svc.ChooseCard(ctx, &board.ChooseCardInput{GameID: gameID, Dismiss: true})
		if err != nil {
			return err
		}
		printState(out.Session)

	case "executar", "recusar":
		decision := board.DecisionExecute
		if command == "recusar" {
			decision = board.DecisionRefuse
		}
		out, err := svc.ResolveDecision(ctx, &board.ResolveDecisionInput{GameID: gameID, Decision: decision})
		if err != nil {
			return err
		}
		fmt.Printf("pontos: %+d\n", out.ScoreDelta)
		printState(out.Session)

	case "+1", "-1":
		delta := 1
		if command == "-1" {
			delta = -1
		}
		out, err := svc.ApplyFeedback(ctx, &board.ApplyFeedbackInput{GameID: gameID, ItemID: arg, Delta: delta})
		if err != nil {
			return err
		}
		fmt.Printf("nota de %s: %d\n", out.ItemID, out.Score)

	case "jogador":
		parts := strings.Fields(arg)
		if len(parts) == 0 {
			return fmt.Errorf("jogador espera um nome")
		}
		color := playerColors[0]
		if len(parts) > 1 {
			color = parts[1]
		}
		out, err := svc.AddPlayer(ctx, &board.AddPlayerInput{GameID: gameID, Name: parts[0], Color: color})
		if err != nil {
			return err
		}
		fmt.Printf("%s entrou no jogo\n", out.Player.Name)

	case "estado":
		out, err := svc.GetGame(ctx, &board.GetGameInput{GameID: gameID})
		if err != nil {
			return err
		}
		printState(out.Session)

	case "reiniciar":
		out, err := svc.ResetGame(ctx, &board.ResetGameInput{GameID: gameID})
		if err != nil {
			return err
		}
		printState(out.Session)

	default:
		return fmt.Errorf("comando desconhecido: %s", command)
	}
	return nil
}

func printState(session *entities.BoardSession) {
	if session.GameOver {
		fmt.Println("fim de jogo!")
		for _, p := range session.Players {
			fmt.Printf("  %s: %d pontos\n", p.Name, p.Score)
		}
		return
	}
	if session.Pending != nil {
		label := "ação"
		if session.Pending.Mandatory {
			label = "ação obrigatória"
		}
		fmt.Printf("%s para %s: %s\n", label, session.ActivePlayer().Name, session.Pending.Text)
		return
	}
	if len(session.CardChoice) > 0 {
		fmt.Printf("cartas para %s:\n", session.ActivePlayer().Name)
		for i, c := range session.CardChoice {
			fmt.Printf("  %d) %s\n", i+1, c.Text)
		}
		return
	}
	fmt.Printf("vez de %s (casa %d, %d pontos)\n",
		session.ActivePlayer().Name, session.ActivePlayer().Position, session.ActivePlayer().Score)
}
