// vigiliactl es la CLI de operación: migraciones de esquema, alta del
// primer administrador y chequeo del API en vivo.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/vigilia/internal/config"
	"github.com/dropDatabas3/vigilia/internal/domain/repository"
	"github.com/dropDatabas3/vigilia/internal/security/password"
	"github.com/dropDatabas3/vigilia/internal/store/pg"
	migrations "github.com/dropDatabas3/vigilia/migrations/postgres"
)

func main() {
	_ = godotenv.Load()

	cfgPath := envOr("CONFIG_PATH", "config.yaml")

	root := &cobra.Command{
		Use:           "vigiliactl",
		Short:         "Operación del backend de seguridad electrónica",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", cfgPath, "ruta del YAML de configuración (env CONFIG_PATH)")

	openStore := func(ctx context.Context) (*pg.Store, error) {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
		return pg.New(ctx, cfg.Storage.DSN, pg.Cfg{
			MaxConns: cfg.Storage.Postgres.MaxConns,
			MinConns: cfg.Storage.Postgres.MinConns,
		})
	}

	// grupo migrate
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones de esquema PostgreSQL",
	}
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica todas las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.RunMigrations(ctx, migrations.FS); err != nil {
				return err
			}
			fmt.Println("migraciones aplicadas")
			return nil
		},
	})
	var downYes bool
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revierte el esquema completo (destructivo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !downYes {
				return fmt.Errorf("esto borra todas las tablas; repetí con --yes para confirmar")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.RollbackMigrations(ctx, migrations.FS); err != nil {
				return err
			}
			fmt.Println("esquema revertido")
			return nil
		},
	}
	downCmd.Flags().BoolVar(&downYes, "yes", false, "confirma la operación destructiva")
	migrateCmd.AddCommand(downCmd)

	// admin create: alta directa del primer usuario, sin pasar por el API.
	var adminNombre, adminEmail, adminPassword string
	var adminRol int64
	adminCreateCmd := &cobra.Command{
		Use:   "admin-create",
		Short: "Crea un usuario administrador directo en la base",
		RunE: func(cmd *cobra.Command, args []string) error {
			adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))
			if adminNombre == "" || adminEmail == "" {
				return fmt.Errorf("--nombre y --email son requeridos")
			}
			if len(adminPassword) < 8 {
				return fmt.Errorf("la contraseña debe tener al menos 8 caracteres")
			}
			hash, err := password.Hash(adminPassword)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			u, err := st.Usuarios().Create(ctx, repository.CreateUsuario{
				Nombre:       adminNombre,
				Email:        adminEmail,
				PasswordHash: hash,
				IDRol:        adminRol,
			})
			if err != nil {
				return err
			}
			fmt.Printf("usuario %d creado (%s, rol %s)\n", u.ID, u.Email, u.NombreRol)
			return nil
		},
	}
	adminCreateCmd.Flags().StringVar(&adminNombre, "nombre", "", "nombre completo")
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "email de login")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "contraseña (mínimo 8)")
	adminCreateCmd.Flags().Int64Var(&adminRol, "rol", 1, "id del rol (1 = Administrador General)")

	// status: pega al API corriendo.
	var statusURL string
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Consulta GET /api/status del servidor",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := &http.Client{Timeout: 10 * time.Second}
			resp, err := cl.Get(strings.TrimRight(statusURL, "/") + "/api/status")
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			b, _ := io.ReadAll(resp.Body)
			var v any
			if json.Unmarshal(b, &v) == nil {
				p, _ := json.MarshalIndent(v, "", "  ")
				fmt.Println(string(p))
			} else {
				fmt.Println(string(b))
			}
			if resp.StatusCode/100 != 2 {
				return fmt.Errorf("status=%d", resp.StatusCode)
			}
			return nil
		},
	}
	statusCmd.Flags().StringVar(&statusURL, "url", envOr("VIGILIA_URL", "http://localhost:8080"), "URL base del API (env VIGILIA_URL)")

	root.AddCommand(migrateCmd, adminCreateCmd, statusCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
