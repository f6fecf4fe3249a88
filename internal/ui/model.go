package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"shopgrip/internal/catalog"
	"shopgrip/internal/config"
	"shopgrip/internal/domain"
	"shopgrip/internal/eventbus"
	"shopgrip/internal/logic"
	"shopgrip/internal/ui/commands"
	"shopgrip/internal/ui/debounce"
	"shopgrip/internal/ui/handlers"
	"shopgrip/internal/ui/input"
	inputtypes "shopgrip/internal/ui/input/types"
	"shopgrip/internal/ui/services/cart"
	"shopgrip/internal/ui/services/search"
	"shopgrip/internal/ui/state"
	"shopgrip/internal/ui/views"
)

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 4 * time.Second

// Services are the backends the model talks to. Catalog and CartReader may
// be nil.
type Services struct {
	Search     search.Provider
	Cart       cart.Submitter
	CartReader commands.CartReader
	Catalog    logic.CatalogStore
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.AppState
	services Services

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        keyMap
	spinner     spinner.Model
	inPagerMode bool
	statusID    int

	// Set by failure hooks during an update, shown once it finishes
	failureStatus string

	// Cancelled on quit so in-flight lookups and submissions stop
	ctx    context.Context
	cancel context.CancelFunc

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	cmdExecutor  *commands.Executor
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	search       *search.Session
	debounce     *debounce.Timer
	cart         *cart.Controller

	// Program reference for terminal management
	program *tea.Program
	pager   *PagerOps
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, svc Services) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	appState := state.NewAppState(cfg.UISettings.SlidesPerView)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		services:     svc,
		help:         help.New(),
		keys:         newKeyMap(),
		spinner:      sp,
		ctx:          ctx,
		cancel:       cancel,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		debounce:     debounce.New(cfg.Search.Debounce()),
	}

	m.cmdExecutor = commands.NewExecutor(ctx, appState, bus, svc.CartReader)
	m.eventHandler = handlers.NewEventHandler(appState)

	m.search = search.NewSession(bus, cfg.Search.MinQueryLength)
	m.search.SetFailureHook(func(q search.Query, err error) {
		log.Printf("Search %q failed: %v", q.Text, err)
	})

	m.cart = cart.NewController(svc.Cart, m, bus)
	m.cart.SetFailureHook(func(id uint64, err error) {
		log.Printf("Add to cart #%d failed: %v", id, err)
		m.failureStatus = fmt.Sprintf("Could not add to cart: %s", describe(err))
	})

	if svc.Catalog != nil {
		if page := svc.Catalog.HomePage(); len(page.Featured) > 0 {
			appState.SetPage(page, nil)
		}
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Init requests the home page and starts the spinner
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if !m.state.Loaded {
		cmds = append(cmds, m.cmdExecutor.ExecuteRefreshCatalog(), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	default:
		cmd := m.handleNonKeyboardMsg(msg)
		// Keep the cursor blinking in the search input
		if inputCmd := m.inputHandler.Update(msg); inputCmd != nil {
			cmd = tea.Batch(cmd, inputCmd)
		}
		return m, cmd
	}
}

// inputContext builds the read-only view the input modes see
func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:  m.state,
		Search: m.search,
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	prev := m.inputHandler.CurrentMode()
	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(prev, action))
	}
	cmds = append(cmds, m.handleModeChange(prev))
	cmds = append(cmds, m.takeFailureStatus())
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(mode inputtypes.Mode, action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if mode == inputtypes.ModeCart {
			switch a.Direction {
			case "up":
				m.state.MoveCartCursor(-1)
			case "down":
				m.state.MoveCartCursor(1)
			}
			return nil
		}
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		if a.Text == m.search.Text() {
			return nil
		}
		m.search.OnInputChange(a.Text)
		return m.debounce.Trigger()

	case inputtypes.MoveResultAction:
		n := m.search.Results().Len()
		if n == 0 {
			return nil
		}
		m.state.SelectedResult = (m.state.SelectedResult + a.Delta + n) % n

	case inputtypes.SubmitTextAction:
		item, ok := m.search.Results().At(m.state.SelectedResult)
		if !ok {
			return nil
		}
		if p, found := m.lookupProduct(item.Handle); found {
			return m.showInPager(item.Title, views.ProductDetails(p))
		}
		return m.showInPager(item.Title, views.SummaryDetails(item))

	case inputtypes.CancelTextAction:
		// Closing the overlay happens on the mode change

	case inputtypes.AddToCartAction:
		p, ok := m.state.SelectedProduct()
		if !ok {
			return nil
		}
		if cmd := m.cart.AddToCart(m.ctx, p); cmd != nil {
			return tea.Batch(cmd, m.spinner.Tick)
		}

	case inputtypes.OpenDetailsAction:
		return m.openDetails()

	case inputtypes.ToggleCartAction:
		if m.state.CartOpen {
			m.setMode(inputtypes.ModeNormal)
			return nil
		}
		m.Open(cart.PanelCart)
		return m.cmdExecutor.ExecuteRefreshCart()

	case inputtypes.RefreshAction:
		if mode == inputtypes.ModeCart {
			return m.cmdExecutor.ExecuteRefreshCart()
		}
		return tea.Batch(m.cmdExecutor.ExecuteRefreshCatalog(), m.spinner.Tick)

	case inputtypes.ToggleHelpAction:
		return m.showInPager("Help", m.helpRenderer.RenderHelpContent(m.search.MinLength()))

	case inputtypes.QuitAction:
		m.cancel()
		return tea.Quit
	}
	return nil
}

// navigate moves focus between sections and the cursor within one
func (m *Model) navigate(direction string) {
	nav := m.state.FocusedCarousel()
	switch direction {
	case "up":
		m.state.MoveFocus(-1)
	case "down":
		m.state.MoveFocus(1)
	case "left":
		nav.Move(-1)
	case "right":
		nav.Move(1)
	case "pageup":
		nav.PagePrev()
	case "pagedown":
		nav.PageNext()
	case "home":
		nav.Home()
	case "end":
		nav.End()
	}
}

// setMode switches input mode outside of a key press
func (m *Model) setMode(mode inputtypes.Mode) tea.Cmd {
	prev := m.inputHandler.CurrentMode()
	m.inputHandler.ChangeMode(mode, m.inputContext())
	return m.handleModeChange(prev)
}

// handleModeChange keeps the search session and cart panel in step with the
// input mode
func (m *Model) handleModeChange(prev inputtypes.Mode) tea.Cmd {
	now := m.inputHandler.CurrentMode()
	if now == prev {
		return nil
	}
	log.Debugf("Input mode %s -> %s", prev, now)

	if prev == inputtypes.ModeSearch {
		m.debounce.Cancel()
		m.search.OnClose()
		m.state.SelectedResult = 0
	}
	if prev == inputtypes.ModeCart {
		m.state.CartOpen = false
	}

	if now == inputtypes.ModeSearch {
		m.search.OnFocus()
		m.state.SelectedResult = 0
	}
	return nil
}

// Open implements cart.PanelOpener
func (m *Model) Open(panel string) {
	if panel != cart.PanelCart {
		log.Warnf("Unknown panel %q", panel)
		return
	}
	m.state.CartOpen = true
	m.setMode(inputtypes.ModeCart)
}

// lookupProduct finds a full product by handle on the home page or in the
// catalog store
func (m *Model) lookupProduct(handle string) (domain.Product, bool) {
	for _, best := range m.state.Page.BestSellers {
		if best.Handle == handle {
			return best, true
		}
	}
	if m.services.Catalog != nil {
		return m.services.Catalog.Product(handle)
	}
	return domain.Product{}, false
}

// openDetails shows the focused item in the pager
func (m *Model) openDetails() tea.Cmd {
	nav := m.state.FocusedCarousel()
	i := nav.GetSelectedIndex()
	if nav.Total() == 0 {
		return nil
	}
	page := m.state.Page
	switch m.state.FocusedSection() {
	case catalog.SectionHero:
		return m.showInPager("Slide", views.SlideDetails(page.Hero[i]))
	case catalog.SectionCategories:
		return m.showInPager(page.Categories[i].Title, views.CollectionDetails(page.Categories[i]))
	case catalog.SectionBestSellers:
		return m.showInPager(page.BestSellers[i].Title, views.ProductDetails(page.BestSellers[i]))
	case catalog.SectionFeatured:
		return m.showInPager(page.Featured[i].Title, views.CollectionDetails(page.Featured[i]))
	}
	return nil
}

// showInPager returns a command that shows content using the ov pager
func (m *Model) showInPager(title, content string) tea.Cmd {
	program, pager := m.program, m.pager
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{title: title, err: errors.New("program not set")}
		}
		program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{title: title, err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.handleEvent(msg.Event)

	case debounce.FiredMsg:
		if !m.debounce.Fired(msg) {
			return nil
		}
		q, ok := m.search.Fire()
		if !ok {
			return nil
		}
		if m.services.Search == nil {
			m.search.Settle(q, nil, errors.New("search is not configured"))
			return nil
		}
		return tea.Batch(search.LookupCmd(m.ctx, m.services.Search, q), m.spinner.Tick)

	case search.SettledMsg:
		if m.search.Apply(msg) {
			m.state.SelectedResult = 0
		}
		return nil

	case cart.SettledMsg:
		m.cart.Settle(msg)
		if c := m.cart.LatestCart(); c != nil && msg.Err == nil {
			m.state.SetCart(c)
			return m.setStatus(fmt.Sprintf("Added to cart (%d items)", c.TotalQuantity), false)
		}
		return m.takeFailureStatus()

	case commands.CartRefreshedMsg:
		if msg.Err != nil {
			log.Printf("Cart refresh failed: %v", msg.Err)
			return m.setStatus("Could not refresh the cart", true)
		}
		m.state.SetCart(msg.Cart)
		return nil

	case spinner.TickMsg:
		if !m.busy() {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed for %s: %v", msg.title, msg.err)
			return m.setStatus(fmt.Sprintf("Could not open %s", msg.title), true)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.state.ClearStatus()
		}
		return nil
	}
	return nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	if status, ok := m.eventHandler.HandleEvent(event); ok {
		return m.setStatus(status.Message, status.IsError)
	}
	return nil
}

// busy reports whether anything the spinner stands for is in progress
func (m *Model) busy() bool {
	return m.state.Loading ||
		m.search.State() == search.OpenLoading ||
		m.cart.Fetcher().State() == cart.Submitting
}

// setStatus shows a transient status message
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.SetStatus(msg, isError)
	m.statusID++
	id := m.statusID
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

// takeFailureStatus surfaces a failure reported by a hook during this update
func (m *Model) takeFailureStatus() tea.Cmd {
	if m.failureStatus == "" {
		return nil
	}
	msg := m.failureStatus
	m.failureStatus = ""
	return m.setStatus(msg, true)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	mode := m.inputHandler.CurrentMode()
	m.keys.mode = mode

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Page:           m.state.Page,
		FailedSections: m.state.FailedSections,
		Loaded:         m.state.Loaded,
		Loading:        m.state.Loading,
		Sections:       state.Sections,
		FocusedSection: m.state.FocusedSection(),
		Carousels:      m.state.Carousels,
		ShowImageURLs:  m.config.UISettings.ShowImageURLs,
		CartOpen:       m.state.CartOpen,
		Cart:           m.state.Cart,
		CartCursor:     m.state.CartCursor,
		CartSubmitting: m.cart.Fetcher().State() == cart.Submitting,
		Spinner:        m.spinner.View(),
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		HelpView:       m.help.View(m.keys),
	}

	if mode == inputtypes.ModeSearch {
		vs.SearchOpen = true
		if ti := m.inputHandler.TextInput(); ti != nil {
			vs.SearchInput = ti.View()
		}
		vs.SearchStatus = m.search.Status()
		vs.SearchQuery = m.search.IssuedText()
		vs.Results = m.search.Results().Items()
		vs.SelectedResult = m.state.SelectedResult
	}

	return m.renderer.Render(vs)
}

// describe turns an error into a short user-facing reason
func describe(err error) string {
	switch {
	case errors.Is(err, cart.ErrNoVariant):
		return "this product has no variants"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return err.Error()
	}
}
