package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gestorzap/models"
	"gestorzap/warming"

	"github.com/jinzhu/gorm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errUnknownUser = errors.New("usuário não encontrado")

// checkOwner garante que o dono informado em --user existe.
func checkOwner(db *gorm.DB, userID int64) error {
	var owner models.User
	err := db.Select("id").First(&owner, userID).Error
	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("%w: %d", errUnknownUser, userID)
	}
	return err
}

func newImportCmd(a *app) *cobra.Command {
	var (
		userID int64
		file   string
	)

	cmd := &cobra.Command{
		Use:       "import numbers|groups",
		Short:     "Importa números ou grupos de aquecimento em lote (uma linha por registro)",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"numbers", "groups"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user é obrigatório")
			}
			text, err := readImportText(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			db, err := a.connect(true)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := checkOwner(db, userID); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var (
				result any
				status string
			)
			switch args[0] {
			case "numbers":
				res, err := importInto(ctx, warming.NewNumberBook(db, userID), text)
				if err != nil {
					return err
				}
				result, status = res, res.Status
			case "groups":
				res, err := importInto(ctx, warming.NewGroupBook(db, userID), text)
				if err != nil {
					return err
				}
				result, status = res, res.Status
			}

			a.log.Info("import finished",
				zap.String("kind", args[0]),
				zap.Int64("user_id", userID),
				zap.String("status", status),
			)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().Int64VarP(&userID, "user", "u", 0, "id do usuário dono dos registros")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "arquivo de entrada (\"-\" para stdin)")
	return cmd
}

func importInto[T any](ctx context.Context, b *warming.Book[T], text string) (warming.Result[T], error) {
	if err := b.Load(ctx); err != nil {
		return warming.Result[T]{}, err
	}
	return warming.Import(ctx, b, text)
}

func readImportText(stdin io.Reader, file string) (string, error) {
	if file == "" || file == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("import: %w", err)
	}
	return string(b), nil
}
