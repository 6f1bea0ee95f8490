package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"

	"hbot/internal/command"
	"hbot/internal/command/core"
	"hbot/internal/command/dev"
	"hbot/internal/command/eco"
	"hbot/internal/config"
	"hbot/internal/cooldown"
	"hbot/internal/db"
	"hbot/internal/discord"
	"hbot/internal/economy"
)

func main() {
	log.Println("[INFO] Starting hbot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Connect(ctx, db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
		PoolSize: cfg.DBPoolSize,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := conn.Migrate(ctx); err != nil {
		log.Fatal(err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis unreachable: ", err)
	}

	registry := command.NewRegistry()
	// A duplicate name or alias here is a configuration bug; refuse to start.
	if err := registry.Register(
		&core.HelpCommand{},
		&core.PingCommand{},
		&eco.BalanceCommand{},
		&eco.PayCommand{},
		&eco.DepositCommand{},
		&eco.WithdrawCommand{},
		&eco.RegisterCommand{},
		&eco.EcoSetCommand{},
		&eco.EcoAddCommand{},
		&dev.DBCommand{},
	); err != nil {
		log.Fatal(err)
	}

	deps := &command.Deps{
		Registry: registry,
		Eco:      economy.New(conn),
		DB:       conn,
		Redis:    rdb,
		Cooldown: cooldown.New(rdb),
		Prefix:   cfg.Prefix,
	}

	bot := discord.NewBot(cfg, deps)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Bot exited cleanly")
}
