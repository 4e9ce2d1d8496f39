package stores

import "time"

// UserState holds the signed-in operator.
type UserState struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
}

// CartItem is one line in the cart.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartState holds cart lines and tracks the last change.
type CartState struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total returns the cart value.
func (c CartState) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// UIState holds dashboard chrome state.
type UIState struct {
	SidebarOpen bool   `json:"sidebar_open"`
	Theme       string `json:"theme"`
	ActiveModal string `json:"active_modal"`
}

// FilterState holds the listing filters.
type FilterState struct {
	Query string   `json:"query"`
	Tags  []string `json:"tags"`
	Sort  string   `json:"sort"`
}

// Notification is one entry in the notification tray.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationState holds the tray contents.
type NotificationState struct {
	Items []Notification `json:"items"`
}

// Unread counts notifications not yet acknowledged.
func (n NotificationState) Unread() int {
	var count int
	for _, item := range n.Items {
		if !item.Read {
			count++
		}
	}
	return count
}

// PreferencesState holds operator preferences.
type PreferencesState struct {
	Language     string `json:"language"`
	Timezone     string `json:"timezone"`
	EmailUpdates bool   `json:"email_updates"`
}

// NewUserStore starts signed out.
func NewUserStore(opts ...Option[UserState]) *Store[UserState] {
	return New("user", UserState{}, opts...)
}

// NewCartStore starts empty.
func NewCartStore(opts ...Option[CartState]) *Store[CartState] {
	opts = append([]Option[CartState]{WithClone(cloneCart)}, opts...)
	return New("cart", CartState{}, opts...)
}

// NewUIStore starts with the sidebar open on the light theme.
func NewUIStore(opts ...Option[UIState]) *Store[UIState] {
	return New("ui", UIState{SidebarOpen: true, Theme: "light"}, opts...)
}

// NewFilterStore starts unfiltered, newest first.
func NewFilterStore(opts ...Option[FilterState]) *Store[FilterState] {
	opts = append([]Option[FilterState]{WithClone(cloneFilters)}, opts...)
	return New("filters", FilterState{Sort: "newest"}, opts...)
}

// NewNotificationStore starts with an empty tray.
func NewNotificationStore(opts ...Option[NotificationState]) *Store[NotificationState] {
	opts = append([]Option[NotificationState]{WithClone(cloneNotifications)}, opts...)
	return New("notifications", NotificationState{}, opts...)
}

// NewPreferencesStore starts in English, UTC, mail on.
func NewPreferencesStore(opts ...Option[PreferencesState]) *Store[PreferencesState] {
	return New("preferences", PreferencesState{Language: "en", Timezone: "UTC", EmailUpdates: true}, opts...)
}

func cloneCart(c CartState) CartState {
	out := c
	out.Items = append([]CartItem(nil), c.Items...)
	return out
}

func cloneFilters(f FilterState) FilterState {
	out := f
	out.Tags = append([]string(nil), f.Tags...)
	return out
}

func cloneNotifications(n NotificationState) NotificationState {
	out := n
	out.Items = append([]Notification(nil), n.Items...)
	return out
}
