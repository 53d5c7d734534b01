package infrastructure

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"project_escolaInfantil/internal/entities"
	"project_escolaInfantil/internal/interfaces"
	"project_escolaInfantil/internal/usecases"
)

// Callback data for the fixed option buttons. Each maps to the phrase the
// classifier recognizes as a shortcut.
var telegramCallbacks = map[string]string{
	"opt_pagamentos": "Consultar pagamentos",
	"opt_presencas":  "Verificar presenças",
	"opt_atividades": "Ver atividades",
	"opt_horario":    "Horário de funcionamento",
	"opt_contato":    "Informações de contato",
}

// TelegramGateway runs the school's Telegram bot: it polls for updates and
// routes every message through the chatbot.
type TelegramGateway struct {
	bot       *tgbotapi.BotAPI
	chatbot   *usecases.Chatbot
	sessions  *SessionManager
	limiter   *MessageRateLimiter
	conversas interfaces.ConversaStore

	stopChan  chan struct{}
	isRunning bool
	mu        sync.Mutex
}

func NewTelegramGateway(token string, chatbot *usecases.Chatbot, conversas interfaces.ConversaStore) (*TelegramGateway, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &TelegramGateway{
		bot:       bot,
		chatbot:   chatbot,
		sessions:  NewSessionManager(),
		limiter:   NewMessageRateLimiter(0.5, 3),
		conversas: conversas,
		stopChan:  make(chan struct{}),
	}, nil
}

// Start begins polling. Blocks until Stop is called, so run it in a goroutine.
func (g *TelegramGateway) Start() {
	g.mu.Lock()
	g.isRunning = true
	g.mu.Unlock()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := g.bot.GetUpdatesChan(u)

	log.Info().Str("bot", g.bot.Self.UserName).Msg("telegram gateway polling")

	for {
		select {
		case <-g.stopChan:
			g.mu.Lock()
			g.isRunning = false
			g.mu.Unlock()
			log.Info().Msg("telegram gateway stopped")
			return
		case update := <-updates:
			go g.handleUpdate(update)
		}
	}
}

func (g *TelegramGateway) Stop() {
	close(g.stopChan)
}

// Status reports whether the gateway is polling and under which bot name.
func (g *TelegramGateway) Status() (running bool, botName string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isRunning, g.bot.Self.UserName
}

func (g *TelegramGateway) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		g.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	senderID := strconv.FormatInt(chatID, 10)

	if update.Message.IsCommand() {
		g.handleCommand(chatID, update.Message)
		return
	}

	if !g.limiter.Allow(senderID) {
		wait := g.limiter.WaitTime(senderID)
		g.send(chatID, fmt.Sprintf("Muitas mensagens seguidas. Aguarde %d segundos.", int(wait.Seconds())+1), false)
		return
	}

	g.respond(chatID, senderID, update.Message.Text)
}

func (g *TelegramGateway) handleCommand(chatID int64, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		texto := fmt.Sprintf("Olá! Sou o assistente virtual da %s. Como posso ajudar?",
			g.chatbot.Escola().Nome)
		g.send(chatID, texto, true)
	case "aluno":
		arg := strings.TrimSpace(msg.CommandArguments())
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			g.send(chatID, "Uso: /aluno <número de matrícula>", false)
			return
		}
		session := g.sessions.GetOrCreate(strconv.FormatInt(chatID, 10))
		session.LinkAluno(id)
		g.send(chatID, fmt.Sprintf("Certo! Vou consultar os registros do aluno %d.", id), false)
	default:
		g.send(chatID, "Comando desconhecido. Use /start para começar.", false)
	}
}

func (g *TelegramGateway) handleCallback(callback *tgbotapi.CallbackQuery) {
	g.bot.Request(tgbotapi.NewCallback(callback.ID, ""))

	chatID := callback.Message.Chat.ID
	session := g.sessions.GetOrCreate(strconv.FormatInt(chatID, 10))
	if !session.IsAllowedClick() {
		return
	}

	phrase, ok := telegramCallbacks[callback.Data]
	if !ok {
		return
	}
	g.respond(chatID, strconv.FormatInt(chatID, 10), phrase)
}

func (g *TelegramGateway) respond(chatID int64, senderID, text string) {
	session := g.sessions.GetOrCreate(senderID)
	session.StartProcessing()
	defer session.FinishProcessing()

	msg := entities.ChatMessage{
		Message:   text,
		StudentID: session.LinkedAluno(),
		Channel:   "telegram",
	}
	topic, resp := g.chatbot.Responder(msg)

	g.logConversa(msg, topic)
	g.send(chatID, resp.Reply, len(resp.Options) > 0)
}

func (g *TelegramGateway) logConversa(msg entities.ChatMessage, topic usecases.Topic) {
	if g.conversas == nil {
		return
	}
	err := g.conversas.Registra(&entities.Conversa{
		Canal:    msg.Channel,
		IDAluno:  msg.StudentID,
		Mensagem: msg.Message,
		Topico:   string(topic),
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to log telegram conversation")
	}
}

func (g *TelegramGateway) send(chatID int64, text string, withKeyboard bool) {
	msg := tgbotapi.NewMessage(chatID, text)
	if withKeyboard {
		keyboard := optionsKeyboard()
		msg.ReplyMarkup = &keyboard
	}
	if _, err := g.bot.Send(msg); err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("failed to send telegram message")
	}
}

// optionsKeyboard builds the inline keyboard with the standard menu.
func optionsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Consultar pagamentos", "opt_pagamentos"),
			tgbotapi.NewInlineKeyboardButtonData("📋 Verificar presenças", "opt_presencas"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎨 Ver atividades", "opt_atividades"),
			tgbotapi.NewInlineKeyboardButtonData("🕐 Horário de funcionamento", "opt_horario"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📞 Informações de contato", "opt_contato"),
		),
	)
}

// SendMessage lets other components push a text to a chat id.
func (g *TelegramGateway) SendMessage(to string, content string) error {
	chatID, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", to, err)
	}
	_, err = g.bot.Send(tgbotapi.NewMessage(chatID, content))
	return err
}
