package main

import (
	"log"

	"telegram-remind-bot/internal/config"
	"telegram-remind-bot/internal/conversation"
	"telegram-remind-bot/internal/handlers"
	"telegram-remind-bot/internal/scheduler"
	"telegram-remind-bot/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.

	cfg := config.Load()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatal(err)
	}

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}

	clock := clockwork.NewRealClock()

	h := &handlers.Handler{Bot: bot, DB: db}
	sched, err := scheduler.New(db, clock, h.SendReminder)
	if err != nil {
		log.Fatal(err)
	}
	h.Sched = sched
	h.Conv = conversation.New(db, sched, clock, cfg.Location)

	if err := sched.Start(); err != nil {
		log.Fatal(err)
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	for upd := range bot.GetUpdatesChan(updateConfig) {
		if upd.Message != nil {
			h.HandleMessage(upd.Message)
		}
		if upd.CallbackQuery != nil {
			h.HandleCallback(upd.CallbackQuery)
		}
	}
}
