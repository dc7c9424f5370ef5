package tui

import (
	"context"
	"strings"
	"time"

	"FlashDeck/internal/cli/api"
	"FlashDeck/internal/cli/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const toastTTL = 3 * time.Second

// Screen: текущий экран.
type Screen int

const (
	ScreenDecks Screen = iota
	ScreenFlashcards
)

// Mode: что сейчас принимает ввод.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeForm
	ModeConfirm
)

type formKind int

const (
	formCreateDeck formKind = iota
	formEditDeck
	formCreateFlashcard
	formEditFlashcard
)

// Messages
type decksMsg struct {
	decks       []model.Deck
	err         error
	unsubscribe func()
}

type flashcardsMsg struct {
	deckID      string
	cards       []model.Flashcard
	err         error
	unsubscribe func()
}

type mutationMsg struct {
	text     string
	err      error
	fromForm bool
}

type toastExpiredMsg struct {
	id int
}

// Model: корневая модель TUI: сетка колод и сетка карточек выбранной колоды.
type Model struct {
	ctx     context.Context
	sess    api.Session
	updates chan tea.Msg

	width  int
	height int
	screen Screen
	mode   Mode

	decks        []model.Deck
	decksErr     error
	decksLoading bool
	deckCursor   int

	deck         model.Deck
	cards        []model.Flashcard
	cardsErr     error
	cardsLoading bool
	cardCursor   int

	form       Form
	formKind   formKind
	editID     string
	submitting bool
	confirm    ConfirmationDialog

	toast    *toast
	toastSeq int
	spinner  spinner.Model

	unsubDecks func()
	unsubCards func()
}

// New создаёт модель поверх сессии клиента.
func New(ctx context.Context, sess api.Session) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)
	return Model{
		ctx:          ctx,
		sess:         sess,
		updates:      make(chan tea.Msg, 64),
		width:        80,
		screen:       ScreenDecks,
		decksLoading: true,
		spinner:      sp,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.subscribeDecks(), m.waitForUpdate())
}

// send передаёт перезагруженные подписки в цикл программы.
func send(ctx context.Context, ch chan<- tea.Msg, msg tea.Msg) {
	select {
	case ch <- msg:
	case <-ctx.Done():
	}
}

func (m Model) waitForUpdate() tea.Cmd {
	ch := m.updates
	return func() tea.Msg { return <-ch }
}

// Commands
func (m Model) subscribeDecks() tea.Cmd {
	ctx, sess, ch := m.ctx, m.sess, m.updates
	return func() tea.Msg {
		decks, unsubscribe, err := api.GetDecks.Subscribe(ctx, sess, api.NoArg{}, func(d []model.Deck, err error) {
			send(ctx, ch, decksMsg{decks: d, err: err})
		})
		return decksMsg{decks: decks, err: err, unsubscribe: unsubscribe}
	}
}

func (m Model) subscribeFlashcards(deckID string) tea.Cmd {
	ctx, sess, ch := m.ctx, m.sess, m.updates
	return func() tea.Msg {
		cards, unsubscribe, err := api.GetFlashcardsByDeckID.Subscribe(ctx, sess, deckID, func(c []model.Flashcard, err error) {
			send(ctx, ch, flashcardsMsg{deckID: deckID, cards: c, err: err})
		})
		return flashcardsMsg{deckID: deckID, cards: cards, err: err, unsubscribe: unsubscribe}
	}
}

// mutate выполняет мутацию и сообщает результат текстом для уведомления.
// fromForm отмечает мутации, отправленные формой: только они закрывают форму.
func (m Model) mutate(fromForm bool, success, failure string, run func(ctx context.Context, s api.Session) error) tea.Cmd {
	ctx, sess := m.ctx, m.sess
	return func() tea.Msg {
		if err := run(ctx, sess); err != nil {
			return mutationMsg{text: failure, err: err, fromForm: fromForm}
		}
		return mutationMsg{text: success, fromForm: fromForm}
	}
}

func (m *Model) showToast(text string, ok bool) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, text: text, ok: ok}
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *Model) unsubscribeAll() {
	if m.unsubCards != nil {
		m.unsubCards()
		m.unsubCards = nil
	}
	if m.unsubDecks != nil {
		m.unsubDecks()
		m.unsubDecks = nil
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case decksMsg:
		if msg.unsubscribe != nil {
			if m.unsubDecks != nil {
				m.unsubDecks()
			}
			m.unsubDecks = msg.unsubscribe
		}
		m.decksLoading = false
		m.decks, m.decksErr = msg.decks, msg.err
		m.deckCursor = clamp(m.deckCursor, len(m.decks))
		return m, m.nextUpdate(msg.unsubscribe == nil)

	case flashcardsMsg:
		if m.screen != ScreenFlashcards || msg.deckID != m.deck.ID {
			// колода уже закрыта
			if msg.unsubscribe != nil {
				msg.unsubscribe()
			}
			return m, m.nextUpdate(msg.unsubscribe == nil)
		}
		if msg.unsubscribe != nil {
			if m.unsubCards != nil {
				m.unsubCards()
			}
			m.unsubCards = msg.unsubscribe
		}
		m.cardsLoading = false
		m.cards, m.cardsErr = msg.cards, msg.err
		m.cardCursor = clamp(m.cardCursor, len(m.cards))
		return m, m.nextUpdate(msg.unsubscribe == nil)

	case submitMsg:
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.submit(msg.values)

	case mutationMsg:
		if msg.fromForm {
			m.submitting = false
		}
		if msg.err != nil {
			// форма остаётся открытой
			cmd := m.showToast(msg.text, false)
			return m, cmd
		}
		if msg.fromForm && m.mode == ModeForm {
			m.mode = ModeBrowse
		}
		cmd := m.showToast(msg.text, true)
		return m, cmd

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.unsubscribeAll()
			return m, tea.Quit
		}
		switch m.mode {
		case ModeForm:
			if msg.String() == "esc" {
				m.mode = ModeBrowse
				return m, nil
			}
			cmd := m.form.Update(msg)
			return m, cmd
		case ModeConfirm:
			done, cmd := m.confirm.Update(msg)
			if done {
				m.mode = ModeBrowse
			}
			return m, cmd
		default:
			return m.browseKey(msg)
		}
	}

	if m.mode == ModeForm {
		cmd := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// nextUpdate продолжает слушать канал, если сообщение пришло из него.
func (m Model) nextUpdate(fromChannel bool) tea.Cmd {
	if fromChannel {
		return m.waitForUpdate()
	}
	return nil
}

func (m Model) browseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" {
		m.unsubscribeAll()
		return m, tea.Quit
	}
	if key == "esc" || key == "backspace" {
		if m.screen == ScreenFlashcards {
			m.closeDeck()
		}
		return m, nil
	}
	if key == "r" {
		if cmd := m.retry(); cmd != nil {
			return m, cmd
		}
	}
	if m.listBlocked() {
		return m, nil
	}

	count := len(m.decks)
	cursor := &m.deckCursor
	if m.screen == ScreenFlashcards {
		count = len(m.cards)
		cursor = &m.cardCursor
	}
	cols := columnsFor(m.width)

	switch key {
	case "right", "l":
		*cursor = clamp(*cursor+1, count)
	case "left", "h":
		*cursor = clamp(*cursor-1, count)
	case "down", "j":
		*cursor = clamp(*cursor+cols, count)
	case "up", "k":
		*cursor = clamp(*cursor-cols, count)
	case "enter":
		if m.screen == ScreenDecks && count > 0 {
			cmd := m.openDeck(m.decks[m.deckCursor])
			return m, cmd
		}
	case "a":
		m.openCreateForm()
	case "e":
		if count > 0 {
			m.openEditForm()
		}
	case "d":
		if count > 0 {
			m.openConfirm()
		}
	}
	return m, nil
}

// listBlocked: основной список ещё грузится или не загрузился.
func (m Model) listBlocked() bool {
	if m.screen == ScreenFlashcards {
		return m.cardsLoading || m.cardsErr != nil
	}
	return m.decksLoading || m.decksErr != nil
}

// retry заново подписывается на список, который не загрузился.
func (m *Model) retry() tea.Cmd {
	if m.screen == ScreenFlashcards {
		if m.cardsErr == nil {
			return nil
		}
		return m.openDeck(m.deck)
	}
	if m.decksErr == nil {
		return nil
	}
	m.decksErr = nil
	m.decksLoading = true
	return m.subscribeDecks()
}

func (m *Model) openDeck(d model.Deck) tea.Cmd {
	m.screen = ScreenFlashcards
	m.deck = d
	m.cards = nil
	m.cardsErr = nil
	m.cardsLoading = true
	m.cardCursor = 0
	return m.subscribeFlashcards(d.ID)
}

func (m *Model) closeDeck() {
	if m.unsubCards != nil {
		m.unsubCards()
		m.unsubCards = nil
	}
	m.screen = ScreenDecks
	m.deck = model.Deck{}
	m.cards = nil
}

func (m *Model) openCreateForm() {
	if m.screen == ScreenDecks {
		m.formKind = formCreateDeck
		m.form = NewForm("Add New Deck",
			NewField("Name", "", "Please input the name of the deck!"),
			NewField("Description", "", ""),
		)
	} else {
		m.formKind = formCreateFlashcard
		m.form = NewForm("Add New Flashcard",
			NewField("Label", "", "Please input the label of the flashcard!"),
			NewField("Value", "", "Please input the value of the flashcard!"),
		)
	}
	m.mode = ModeForm
}

func (m *Model) openEditForm() {
	if m.screen == ScreenDecks {
		d := m.decks[m.deckCursor]
		m.formKind = formEditDeck
		m.editID = d.ID
		m.form = NewForm("Edit Deck",
			NewField("Name", d.Name, "Please input the name of the deck!"),
			NewField("Description", d.DescriptionOrEmpty(), ""),
		)
	} else {
		f := m.cards[m.cardCursor]
		m.formKind = formEditFlashcard
		m.editID = f.ID
		m.form = NewForm("Edit Flashcard",
			NewField("Label", f.Label, "Please input the label of the flashcard!"),
			NewField("Value", f.Value, "Please input the value of the flashcard!"),
		)
	}
	m.mode = ModeForm
}

func (m *Model) openConfirm() {
	if m.screen == ScreenDecks {
		id := m.decks[m.deckCursor].ID
		m.confirm = NewConfirmationDialog(
			"Are you sure you want to delete this deck?",
			"This action cannot be undone.",
			func() tea.Cmd {
				return m.mutate(false, "Deck deleted successfully", "Failed to delete deck", func(ctx context.Context, s api.Session) error {
					_, err := api.DeleteDeck.Run(ctx, s, id)
					return err
				})
			},
		)
	} else {
		id := m.cards[m.cardCursor].ID
		m.confirm = NewConfirmationDialog(
			"Are you sure you want to delete this flashcard?",
			"This action cannot be undone.",
			func() tea.Cmd {
				return m.mutate(false, "Flashcard deleted successfully", "Failed to delete flashcard", func(ctx context.Context, s api.Session) error {
					_, err := api.DeleteFlashcard.Run(ctx, s, id)
					return err
				})
			},
		)
	}
	m.mode = ModeConfirm
}

// submit превращает значения формы в мутацию.
func (m Model) submit(values []string) tea.Cmd {
	switch m.formKind {
	case formCreateDeck:
		in := model.DeckInput{Name: values[0]}
		if values[1] != "" {
			in.Description = &values[1]
		}
		return m.mutate(true, "Deck created successfully", "Failed to create deck", func(ctx context.Context, s api.Session) error {
			_, err := api.CreateDeck.Run(ctx, s, in)
			return err
		})
	case formEditDeck:
		upd := model.DeckUpdate{ID: m.editID, Name: &values[0], Description: &values[1]}
		return m.mutate(true, "Deck updated successfully", "Failed to update deck", func(ctx context.Context, s api.Session) error {
			_, err := api.UpdateDeck.Run(ctx, s, upd)
			return err
		})
	case formCreateFlashcard:
		in := model.FlashcardInput{Label: values[0], Value: values[1], DeckID: m.deck.ID}
		return m.mutate(true, "Flashcard created successfully", "Failed to create flashcard", func(ctx context.Context, s api.Session) error {
			_, err := api.CreateFlashcard.Run(ctx, s, in)
			return err
		})
	case formEditFlashcard:
		upd := model.FlashcardUpdate{ID: m.editID, DeckID: m.deck.ID, Label: &values[0], Value: &values[1]}
		return m.mutate(true, "Flashcard updated successfully", "Failed to update flashcard", func(ctx context.Context, s api.Session) error {
			_, err := api.UpdateFlashcard.Run(ctx, s, upd)
			return err
		})
	}
	return nil
}

// View renders the UI
func (m Model) View() string {
	var body string
	switch m.mode {
	case ModeForm:
		body = m.overlay(m.form.View())
	case ModeConfirm:
		body = m.overlay(m.confirm.View())
	default:
		body = m.listView()
	}
	if m.toast != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, m.toast.View(), body)
	}
	return body
}

func (m Model) overlay(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) listView() string {
	if m.screen == ScreenFlashcards {
		switch {
		case m.cardsLoading:
			return m.spinner.View() + " Loading flashcards..."
		case m.cardsErr != nil:
			return dangerStyle.Render("Error loading flashcards: "+m.cardsErr.Error()) + "\n" +
				helpStyle.Render(FormatKey("r", "retry")+" • "+FormatKey("esc", "back")+" • "+FormatKey("q", "quit"))
		}
		grid := make([]gridCard, len(m.cards))
		for i, f := range m.cards {
			grid[i] = gridCard{title: f.Label, body: f.Value}
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Flashcards for Deck: "+m.deck.Name),
			m.gridOrEmpty(grid, m.cardCursor, "No flashcards yet"),
			helpStyle.Render(strings.Join([]string{
				FormatKey("←↑↓→", "navigate"),
				FormatKey("a", "add"),
				FormatKey("e", "edit"),
				FormatKey("d", "delete"),
				FormatKey("esc", "back"),
				FormatKey("q", "quit"),
			}, " • ")),
		)
	}

	switch {
	case m.decksLoading:
		return m.spinner.View() + " Loading decks..."
	case m.decksErr != nil:
		return dangerStyle.Render("Error loading decks: "+m.decksErr.Error()) + "\n" +
			helpStyle.Render(FormatKey("r", "retry")+" • "+FormatKey("q", "quit"))
	}
	grid := make([]gridCard, len(m.decks))
	for i, d := range m.decks {
		grid[i] = gridCard{title: d.Name, body: d.DescriptionOrEmpty()}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Flashcard Decks"),
		m.gridOrEmpty(grid, m.deckCursor, "No decks yet"),
		helpStyle.Render(strings.Join([]string{
			FormatKey("←↑↓→", "navigate"),
			FormatKey("enter", "open"),
			FormatKey("a", "add"),
			FormatKey("e", "edit"),
			FormatKey("d", "delete"),
			FormatKey("q", "quit"),
		}, " • ")),
	)
}

func (m Model) gridOrEmpty(cards []gridCard, cursor int, empty string) string {
	if len(cards) == 0 {
		return mutedStyle.Render(empty)
	}
	return renderGrid(cards, m.width, cursor)
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Screen возвращает текущий экран.
func (m Model) Screen() Screen { return m.screen }

// Mode возвращает текущий режим ввода.
func (m Model) Mode() Mode { return m.mode }

// Toast возвращает текст активного уведомления.
func (m Model) Toast() string {
	if m.toast == nil {
		return ""
	}
	return m.toast.text
}
