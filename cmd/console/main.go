package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/chesscore/chesscore/internal/model"
	"github.com/chesscore/chesscore/internal/render"
)

// Local two-player session: both players share one terminal and one
// game state, taking turns at the same prompt.

const usage = `commands:
  move <from> <to> [q|r|b|n]   play a move, e.g. "move e2 e4" or "move e7 e8 q"
  moves                        list the legal moves
  status                       show the game status
  claim <repetition|fifty|material>
                               claim an available draw
  save [path]                  save the game
  load [path]                  load a saved game
  quit`

var claimMethods = map[string]model.Status{
	"repetition": model.StatusDrawByRepetition,
	"fifty":      model.StatusDrawByFiftyMove,
	"material":   model.StatusDrawByMaterial,
}

func main() {
	savePath := flag.String("save", "chess-save.json", "default save file path")
	flag.Parse()

	scanner := bufio.NewScanner(os.Stdin)
	names := map[model.Color]string{
		model.White: readName(scanner, model.White),
		model.Black: readName(scanner, model.Black),
	}

	state := model.NewGameState()
	fmt.Println(render.Board(state.Board()))

	for {
		if done := announce(state); done {
			return
		}
		fmt.Printf("%s (%s)> ", names[state.ToMove()], state.ToMove())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "move":
			if len(fields) < 3 {
				fmt.Println("usage: move <from> <to> [q|r|b|n]")
				continue
			}
			req := model.MoveRequest{From: fields[1], To: fields[2]}
			if len(fields) > 3 {
				req.Promotion = fields[3]
			}
			if err := playMove(state, req); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println(render.Board(state.Board()))

		case "moves":
			labels := []string{}
			for _, m := range state.LegalMoves() {
				labels = append(labels, moveLabel(m))
			}
			fmt.Println(strings.Join(labels, " "))

		case "status":
			fmt.Println(state.Status())

		case "claim":
			if len(fields) < 2 {
				fmt.Println("usage: claim <repetition|fifty|material>")
				continue
			}
			method, ok := claimMethods[fields[1]]
			if !ok {
				fmt.Println("unknown draw method:", fields[1])
				continue
			}
			if err := state.ClaimDraw(method); err != nil {
				fmt.Println(err)
			}

		case "save":
			path := *savePath
			if len(fields) > 1 {
				path = fields[1]
			}
			if err := saveGame(state, path); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("saved to", path)

		case "load":
			path := *savePath
			if len(fields) > 1 {
				path = fields[1]
			}
			loaded, err := loadGame(path)
			if err != nil {
				fmt.Println(err)
				continue
			}
			state = loaded
			fmt.Println(render.Board(state.Board()))

		case "help":
			fmt.Println(usage)

		case "quit", "exit":
			return

		default:
			fmt.Println(usage)
		}
	}
}

func readName(scanner *bufio.Scanner, color model.Color) string {
	fmt.Printf("%s player name (enter for a random one): ", color)
	if scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			return name
		}
	}
	return petname.Generate(2, " ")
}

func playMove(state *model.GameState, req model.MoveRequest) error {
	move, err := req.ToMove()
	if err != nil {
		return err
	}
	return state.ApplyMove(move)
}

// announce reports the position's status and whether the game is over.
func announce(state *model.GameState) bool {
	switch status := state.Status(); status {
	case model.StatusCheckmate:
		fmt.Printf("checkmate, %s wins\n", state.ToMove().Opponent())
		return true
	case model.StatusStalemate:
		fmt.Println("stalemate")
		return true
	case model.StatusDrawByRepetition, model.StatusDrawByFiftyMove, model.StatusDrawByMaterial:
		if len(state.LegalMoves()) == 0 || state.Claimed() {
			fmt.Println("draw:", status)
			return true
		}
		// Advisory: the draw is claimable but play continues.
		fmt.Println("draw available:", status)
	case model.StatusCheck:
		fmt.Println("check")
	}
	return false
}

func saveGame(state *model.GameState, path string) error {
	data, err := model.Save(state)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadGame(path string) (*model.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return model.Load(data)
}

func moveLabel(m model.Move) string {
	label := m.From.Notation() + m.To.Notation()
	switch m.Promotion {
	case model.Queen:
		label += "q"
	case model.Rook:
		label += "r"
	case model.Bishop:
		label += "b"
	case model.Knight:
		label += "n"
	}
	return label
}
