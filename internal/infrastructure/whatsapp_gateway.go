package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"project_escolaInfantil/internal/entities"
	"project_escolaInfantil/internal/interfaces"
	"project_escolaInfantil/internal/usecases"
)

// WhatsAppGateway runs the school's WhatsApp account. Incoming direct
// messages go through the chatbot; the pairing QR is exposed for the admin
// panel.
type WhatsAppGateway struct {
	client    *whatsmeow.Client
	chatbot   *usecases.Chatbot
	sessions  *SessionManager
	limiter   *MessageRateLimiter
	conversas interfaces.ConversaStore

	qrCode string
	qrLock sync.RWMutex
}

func NewWhatsAppGateway(dbPath string, chatbot *usecases.Chatbot, conversas interfaces.ConversaStore) (*WhatsAppGateway, error) {
	dbLog := waLog.Stdout("Database", "WARN", true)
	container, err := sqlstore.New(context.Background(), "sqlite", "file:"+dbPath+"?_pragma=foreign_keys(1)", dbLog)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to device store: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	clientLog := waLog.Stdout("Client", "WARN", true)
	client := whatsmeow.NewClient(deviceStore, clientLog)

	g := &WhatsAppGateway{
		client:    client,
		chatbot:   chatbot,
		sessions:  NewSessionManager(),
		limiter:   NewMessageRateLimiter(0.5, 3),
		conversas: conversas,
	}
	client.AddEventHandler(g.handleEvent)

	return g, nil
}

// Connect starts the session. On first run it waits for a pairing QR, which
// GetQR exposes until the phone scans it.
func (g *WhatsAppGateway) Connect() error {
	if g.client.Store.ID == nil {
		qrChan, _ := g.client.GetQRChannel(context.Background())
		if err := g.client.Connect(); err != nil {
			return err
		}

		go g.watchQR(qrChan)
		return nil
	}

	if err := g.client.Connect(); err != nil {
		return err
	}
	log.Info().Msg("whatsapp gateway connected with existing session")
	return nil
}

func (g *WhatsAppGateway) watchQR(qrChan <-chan whatsmeow.QRChannelItem) {
	for evt := range qrChan {
		if evt.Event == "code" {
			g.qrLock.Lock()
			g.qrCode = evt.Code
			g.qrLock.Unlock()
			log.Info().Msg("whatsapp pairing QR updated")
		} else {
			log.Info().Str("event", evt.Event).Msg("whatsapp login event")
		}
	}
}

func (g *WhatsAppGateway) GetQR() string {
	g.qrLock.RLock()
	defer g.qrLock.RUnlock()
	return g.qrCode
}

func (g *WhatsAppGateway) IsLoggedIn() bool {
	return g.client.Store.ID != nil
}

func (g *WhatsAppGateway) IsConnected() bool {
	return g.client.IsConnected() && g.client.Store.ID != nil
}

// PhoneNumber returns the connected account's number, empty when unpaired.
func (g *WhatsAppGateway) PhoneNumber() string {
	if g.client.Store.ID == nil {
		return ""
	}
	return g.client.Store.ID.User
}

func (g *WhatsAppGateway) Logout() error {
	g.qrLock.Lock()
	g.qrCode = ""
	g.qrLock.Unlock()

	if err := g.client.Logout(context.Background()); err != nil {
		return err
	}
	g.client.Disconnect()

	// Reconnect to obtain a fresh pairing QR
	qrChan, _ := g.client.GetQRChannel(context.Background())
	if err := g.client.Connect(); err != nil {
		return fmt.Errorf("failed to reconnect after logout: %w", err)
	}
	go g.watchQR(qrChan)

	return nil
}

func (g *WhatsAppGateway) Disconnect() {
	g.client.Disconnect()
}

func (g *WhatsAppGateway) handleEvent(evt interface{}) {
	msg, ok := evt.(*events.Message)
	if !ok {
		return
	}
	// Direct chats only, never groups, never our own messages
	if msg.Info.IsFromMe || msg.Info.IsGroup {
		return
	}

	sender, content := parseMessage(msg)
	if content == "" {
		return
	}

	if !g.limiter.Allow(sender) {
		return
	}

	go g.respond(sender, content)
}

func (g *WhatsAppGateway) respond(sender, text string) {
	session := g.sessions.GetOrCreate(sender)
	session.StartProcessing()
	defer session.FinishProcessing()

	msg := entities.ChatMessage{
		Message:   text,
		StudentID: session.LinkedAluno(),
		Channel:   "whatsapp",
	}
	topic, resp := g.chatbot.Responder(msg)

	g.logConversa(msg, topic)

	reply := resp.Reply
	if len(resp.Options) > 0 {
		reply += "\n"
		for _, opt := range resp.Options {
			reply += "\n• " + opt
		}
	}
	if err := g.SendMessage(sender, reply); err != nil {
		log.Warn().Err(err).Str("sender", sender).Msg("failed to send whatsapp reply")
	}
}

func (g *WhatsAppGateway) logConversa(msg entities.ChatMessage, topic usecases.Topic) {
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
		log.Warn().Err(err).Msg("failed to log whatsapp conversation")
	}
}

// SendMessage sends a plain text to a phone number (digits only).
func (g *WhatsAppGateway) SendMessage(to string, content string) error {
	jid, err := types.ParseJID(to + "@s.whatsapp.net")
	if err != nil {
		return fmt.Errorf("invalid number format: %w", err)
	}

	_, err = g.client.SendMessage(context.Background(), jid, &waProto.Message{
		Conversation: &content,
	})
	return err
}

func parseMessage(evt *events.Message) (sender, content string) {
	sender = evt.Info.Sender.User

	if evt.Message.Conversation != nil {
		content = *evt.Message.Conversation
	} else if evt.Message.ExtendedTextMessage != nil {
		content = *evt.Message.ExtendedTextMessage.Text
	}
	return sender, content
}
