// vigilia arranca el API REST de gestión de seguridad electrónica:
// carga configuración, conecta a PostgreSQL, corre migraciones si se
// pidió y sirve HTTP hasta recibir SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/vigilia/internal/cache"
	cachemem "github.com/dropDatabas3/vigilia/internal/cache/memory"
	cacheredis "github.com/dropDatabas3/vigilia/internal/cache/redis"
	"github.com/dropDatabas3/vigilia/internal/config"
	"github.com/dropDatabas3/vigilia/internal/http/controllers"
	"github.com/dropDatabas3/vigilia/internal/http/router"
	"github.com/dropDatabas3/vigilia/internal/http/services"
	jwtx "github.com/dropDatabas3/vigilia/internal/jwt"
	"github.com/dropDatabas3/vigilia/internal/observability/logger"
	"github.com/dropDatabas3/vigilia/internal/rate"
	"github.com/dropDatabas3/vigilia/internal/store/pg"
	migrations "github.com/dropDatabas3/vigilia/migrations/postgres"

	rdb "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("sin archivo .env: %v (se usan variables del sistema)", err)
	}

	cfgPath := flag.String("config", envOr("CONFIG_PATH", "config.yaml"), "ruta del YAML de configuración")
	migrate := flag.Bool("migrate", false, "corre las migraciones antes de servir")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("configuración inválida: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       envOr("LOG_LEVEL", "info"),
		ServiceName: "vigilia",
	})
	defer func() { _ = logger.Sync() }()
	l := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := pg.New(ctx, cfg.Storage.DSN, pg.Cfg{
		MaxConns:        cfg.Storage.Postgres.MaxConns,
		MinConns:        cfg.Storage.Postgres.MinConns,
		ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		l.Fatal("no se pudo conectar a postgres", logger.Err(err))
	}
	defer store.Close()

	if *migrate || cfg.Flags.Migrate {
		if err := store.RunMigrations(ctx, migrations.FS); err != nil {
			l.Fatal("migraciones fallaron", logger.Err(err))
		}
		l.Info("migraciones aplicadas")
	}

	issuer := jwtx.NewIssuer(cfg.JWT.Secret, cfg.AccessTTLDuration())

	var catalogCache cache.Cache
	switch cfg.Cache.Kind {
	case "redis":
		catalogCache = cacheredis.New(cfg.Cache.Redis.Addr, cfg.Cache.Redis.DB, cfg.Cache.Redis.Prefix)
	default:
		catalogCache = cachemem.New(cfg.MemoryTTLDuration())
	}

	var loginLimiter rate.Limiter
	if cfg.Rate.Enabled {
		if cfg.Cache.Kind == "redis" {
			client := rdb.NewClient(&rdb.Options{Addr: cfg.Cache.Redis.Addr, DB: cfg.Cache.Redis.DB})
			loginLimiter = rate.NewRedisLimiter(client, cfg.Cache.Redis.Prefix+"rl:", cfg.Rate.Login.Limit, cfg.LoginWindowDuration())
		} else {
			loginLimiter = rate.NewMemoryLimiter(cfg.Rate.Login.Limit, cfg.LoginWindowDuration())
		}
	}

	authSvc := services.NewAuthService(store.Usuarios(), issuer)
	usuariosSvc := services.NewUsuarioService(store.Usuarios())
	abonadosSvc := services.NewAbonadoService(store.Abonados())
	modelosSvc := services.NewModeloService(store.Modelos())
	dispositivosSvc := services.NewDispositivoService(store.Dispositivos())
	asignacionesSvc := services.NewAsignacionService(store.Asignaciones())
	eventosSvc := services.NewEventoService(store.Eventos())
	metadataSvc := services.NewMetadataService(store.Metadata(), catalogCache, cfg.MemoryTTLDuration())

	handler := router.New(router.Deps{
		Issuer:             issuer,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		LoginLimiter:       loginLimiter,
		Auth:               controllers.NewAuthController(authSvc),
		Usuarios:           controllers.NewUsuarioController(usuariosSvc),
		Abonados:           controllers.NewAbonadoController(abonadosSvc),
		Modelos:            controllers.NewModeloController(modelosSvc),
		Dispositivos:       controllers.NewDispositivoController(dispositivosSvc),
		Asignaciones:       controllers.NewAsignacionController(asignacionesSvc),
		Eventos:            controllers.NewEventoController(eventosSvc),
		Metadata:           controllers.NewMetadataController(metadataSvc),
		Ready:              store.Ping,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info("servidor escuchando",
			zap.String("addr", cfg.Server.Addr),
			zap.String("env", cfg.App.Env),
			zap.Duration("jwt_ttl", issuer.TTL()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if st := store.PoolStats(); st != nil {
			l.Info("apagando servidor",
				zap.Int32("pool_total", st.TotalConns()),
				zap.Int32("pool_idle", st.IdleConns()))
		} else {
			l.Info("apagando servidor")
		}
		return srv.Shutdown(shctx)
	})

	if err := g.Wait(); err != nil {
		l.Fatal("servidor terminó con error", logger.Err(err))
	}
	l.Info("servidor detenido")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
