package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/disfrutatv/dtv/internal/guard"
	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/services"
	"github.com/disfrutatv/dtv/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MoviesView ViewState = iota
	SeriesView
	LibraryView
	DetailView
	UsersView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	catalog services.Catalog
	tmdb    *services.TMDBService
	library *services.LibraryService
	admin   *services.AdminService
	state   *store.Store

	width  int
	height int

	moviePage  int
	seriesPage int

	movieList   list.Model
	seriesList  list.Model
	libraryList list.Model
	userList    list.Model

	libraryKind services.ListKind
	detail      *models.TitleDetail
	detailFrom  ViewState
	status      string
	err         error
	help        help.Model
	keys        keyMap
}

type moviesFetchedMsg struct {
	movies []models.Movie
	page   int
	err    error
}

type seriesFetchedMsg struct {
	series []models.Series
	page   int
	err    error
}

type libraryFetchedMsg struct {
	kind services.ListKind
	refs []models.LibraryRef
	err  error
}

type detailFetchedMsg struct {
	detail *models.TitleDetail
	err    error
}

type usersFetchedMsg struct {
	users []models.User
	err   error
}

type listChangedMsg struct {
	kind   services.ListKind
	action string
	err    error
}

// NewModel creates a new TUI model with the provided dependencies. The
// store should already be bootstrapped so guard decisions see the
// restored session.
func NewModel(ctx context.Context, catalog services.Catalog, tmdb *services.TMDBService, library *services.LibraryService, admin *services.AdminService, state *store.Store) *Model {
	return &Model{
		ctx:         ctx,
		view:        MoviesView,
		catalog:     catalog,
		tmdb:        tmdb,
		library:     library,
		admin:       admin,
		state:       state,
		moviePage:   1,
		seriesPage:  1,
		libraryKind: services.ListFavorites,
		help:        help.New(),
		keys:        newKeyMap(),
	}
}

// Init starts the TUI on the first page of the movie catalog.
func (m *Model) Init() tea.Cmd {
	return m.fetchMovies(1)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.movieList, &m.seriesList, &m.libraryList, &m.userList} {
			if l.Width() == 0 {
				l.SetSize(msg.Width-4, msg.Height-8)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case MoviesView:
			return m.handleMoviesKeys(msg)
		case SeriesView:
			return m.handleSeriesKeys(msg)
		case LibraryView:
			return m.handleLibraryKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case UsersView:
			return m.handleUsersKeys(msg)
		}

	case moviesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.moviePage = msg.page
		m.state.Dispatch(store.SetMovies(msg.movies))
		items := make([]list.Item, len(msg.movies))
		for i, mv := range msg.movies {
			items[i] = movieItem{movie: mv}
		}
		m.movieList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.movieList.Title = fmt.Sprintf("Movies (page %d)", msg.page)
		m.movieList.SetSize(m.width-4, m.height-8)
		m.view = MoviesView
		return m, nil

	case seriesFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.seriesPage = msg.page
		m.state.Dispatch(store.SetSeries(msg.series))
		items := make([]list.Item, len(msg.series))
		for i, sr := range msg.series {
			items[i] = seriesItem{series: sr}
		}
		m.seriesList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.seriesList.Title = fmt.Sprintf("Series (page %d)", msg.page)
		m.seriesList.SetSize(m.width-4, m.height-8)
		m.view = SeriesView
		return m, nil

	case libraryFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.libraryKind = msg.kind
		items := make([]list.Item, len(msg.refs))
		for i, ref := range msg.refs {
			items[i] = libraryItem{ref: ref}
		}
		m.libraryList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.libraryList.Title = fmt.Sprintf("Library: %s", msg.kind)
		m.libraryList.SetSize(m.width-4, m.height-8)
		m.view = LibraryView
		return m, nil

	case detailFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.detail = msg.detail
		m.view = DetailView
		return m, nil

	case usersFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.state.Dispatch(store.SetUsers(msg.users))
		items := make([]list.Item, len(msg.users))
		for i, u := range msg.users {
			items[i] = userItem{user: u}
		}
		m.userList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.userList.Title = "Users"
		m.userList.SetSize(m.width-4, m.height-8)
		m.view = UsersView
		return m, nil

	case listChangedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("%s %s", msg.action, msg.kind)
		if m.view == LibraryView {
			return m, m.fetchLibrary(msg.kind)
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case MoviesView:
		body = m.renderCatalog(m.movieList)
	case SeriesView:
		body = m.renderCatalog(m.seriesList)
	case LibraryView:
		body = m.renderLibrary()
	case DetailView:
		body = m.renderDetail()
	case UsersView:
		body = m.renderUsers()
	}

	if m.err != nil {
		body = fmt.Sprintf("%s\n%s", styles.err.Render(fmt.Sprintf("Error: %v", m.err)), body)
	} else if m.status != "" {
		body = fmt.Sprintf("%s\n%s", styles.ok.Render(m.status), body)
	}
	return body
}

func (m *Model) handleMoviesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		return m, m.fetchSeries(m.seriesPage)
	case "L":
		return m, m.fetchLibrary(m.libraryKind)
	case "u":
		return m.enterUsers()
	case "l", "]":
		return m, m.fetchMovies(m.moviePage + 1)
	case "h", "[":
		if m.moviePage > 1 {
			return m, m.fetchMovies(m.moviePage - 1)
		}
		return m, nil
	case "enter":
		if mv, ok := m.selectedMovie(); ok {
			m.detailFrom = MoviesView
			return m, m.fetchDetail(models.MediaMovie, mv.ID)
		}
		return m, nil
	case "f", "p", "v":
		if mv, ok := m.selectedMovie(); ok {
			return m, m.addToList(kindForKey(msg.String()), models.MediaMovie, mv.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.movieList, cmd = m.movieList.Update(msg)
	return m, cmd
}

func (m *Model) handleSeriesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "m":
		return m, m.fetchMovies(m.moviePage)
	case "L":
		return m, m.fetchLibrary(m.libraryKind)
	case "u":
		return m.enterUsers()
	case "l", "]":
		return m, m.fetchSeries(m.seriesPage + 1)
	case "h", "[":
		if m.seriesPage > 1 {
			return m, m.fetchSeries(m.seriesPage - 1)
		}
		return m, nil
	case "enter":
		if sr, ok := m.selectedSeries(); ok {
			m.detailFrom = SeriesView
			return m, m.fetchDetail(models.MediaSeries, sr.ID)
		}
		return m, nil
	case "f", "p", "v":
		if sr, ok := m.selectedSeries(); ok {
			return m, m.addToList(kindForKey(msg.String()), models.MediaSeries, sr.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.seriesList, cmd = m.seriesList.Update(msg)
	return m, cmd
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "m":
		m.view = MoviesView
		return m, nil
	case "tab":
		return m, m.fetchLibrary(nextKind(m.libraryKind))
	case "x":
		selected := m.libraryList.SelectedItem()
		if item, ok := selected.(libraryItem); ok {
			return m, m.removeFromList(m.libraryKind, item.ref.Type, item.ref.ID)
		}
		return m, nil
	case "enter":
		selected := m.libraryList.SelectedItem()
		if item, ok := selected.(libraryItem); ok {
			m.detailFrom = LibraryView
			return m, m.fetchDetail(item.ref.Type, item.ref.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.libraryList, cmd = m.libraryList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = m.detailFrom
		m.detail = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) handleUsersKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "m":
		m.view = MoviesView
		return m, nil
	}

	var cmd tea.Cmd
	m.userList, cmd = m.userList.Update(msg)
	return m, cmd
}

// enterUsers checks the route decision before fetching accounts. A denied
// decision keeps the current view; everything past the decision is
// enforced server side.
func (m *Model) enterUsers() (tea.Model, tea.Cmd) {
	if guard.Evaluate(m.state.State(), models.RoleAdmin) == guard.Redirect {
		m.status = "Sign in to view users"
		return m, nil
	}
	return m, m.fetchUsers()
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case MoviesView:
		m.movieList, cmd = m.movieList.Update(msg)
	case SeriesView:
		m.seriesList, cmd = m.seriesList.Update(msg)
	case LibraryView:
		m.libraryList, cmd = m.libraryList.Update(msg)
	case UsersView:
		m.userList, cmd = m.userList.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectedMovie() (models.Movie, bool) {
	if item, ok := m.movieList.SelectedItem().(movieItem); ok {
		return item.movie, true
	}
	return models.Movie{}, false
}

func (m *Model) selectedSeries() (models.Series, bool) {
	if item, ok := m.seriesList.SelectedItem().(seriesItem); ok {
		return item.series, true
	}
	return models.Series{}, false
}

func (m *Model) fetchMovies(page int) tea.Cmd {
	return func() tea.Msg {
		movies, err := m.catalog.Movies(m.ctx, page)
		return moviesFetchedMsg{movies: movies, page: page, err: err}
	}
}

func (m *Model) fetchSeries(page int) tea.Cmd {
	return func() tea.Msg {
		series, err := m.catalog.Series(m.ctx, page)
		return seriesFetchedMsg{series: series, page: page, err: err}
	}
}

func (m *Model) fetchLibrary(kind services.ListKind) tea.Cmd {
	return func() tea.Msg {
		refs, err := m.library.List(m.ctx, kind)
		return libraryFetchedMsg{kind: kind, refs: refs, err: err}
	}
}

func (m *Model) fetchDetail(media models.MediaType, id int) tea.Cmd {
	return func() tea.Msg {
		var detail *models.TitleDetail
		var err error
		if media == models.MediaSeries {
			detail, err = m.tmdb.SeriesDetail(m.ctx, id)
		} else {
			detail, err = m.tmdb.MovieDetail(m.ctx, id)
		}
		return detailFetchedMsg{detail: detail, err: err}
	}
}

func (m *Model) fetchUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := m.admin.Users(m.ctx)
		return usersFetchedMsg{users: users, err: err}
	}
}

func (m *Model) addToList(kind services.ListKind, media models.MediaType, id int) tea.Cmd {
	return func() tea.Msg {
		err := m.library.Add(m.ctx, kind, media, id)
		return listChangedMsg{kind: kind, action: "Added to", err: err}
	}
}

func (m *Model) removeFromList(kind services.ListKind, media models.MediaType, id int) tea.Cmd {
	return func() tea.Msg {
		err := m.library.Remove(m.ctx, kind, media, id)
		return listChangedMsg{kind: kind, action: "Removed from", err: err}
	}
}

func kindForKey(s string) services.ListKind {
	switch s {
	case "p":
		return services.ListPending
	case "v":
		return services.ListViewed
	default:
		return services.ListFavorites
	}
}

func nextKind(kind services.ListKind) services.ListKind {
	switch kind {
	case services.ListFavorites:
		return services.ListPending
	case services.ListPending:
		return services.ListViewed
	default:
		return services.ListFavorites
	}
}

func (m *Model) renderCatalog(l list.Model) string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.favorite, m.keys.pending, m.keys.viewed, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", l.View(), helpView)
}

func (m *Model) renderLibrary() string {
	removeKey := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove"))
	helpKeys := []key.Binding{m.keys.cycle, removeKey, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.libraryList.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.detail == nil {
		return styles.err.Render("No detail loaded\n\nPress esc to go back")
	}

	title := styles.title.Render(m.detail.DisplayName())
	date := m.detail.ReleaseDate
	if date == "" {
		date = m.detail.FirstAirDate
	}
	info := fmt.Sprintf("Released: %s\nRating: %.1f", date, m.detail.VoteAverage)
	if m.detail.Runtime > 0 {
		info = fmt.Sprintf("%s\nRuntime: %d min", info, m.detail.Runtime)
	}
	if len(m.detail.Genres) > 0 {
		names := make([]string, len(m.detail.Genres))
		for i, g := range m.detail.Genres {
			names[i] = g.Name
		}
		info = fmt.Sprintf("%s\nGenres: %v", info, names)
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, info, m.detail.Overview, helpView)
}

func (m *Model) renderUsers() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.userList.View(), helpView)
}
