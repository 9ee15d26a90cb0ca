package estimate

import (
	"sync"
	"time"
)

// Command is one mutation of the estimate document. Every UI event maps to
// exactly one command applied through Session.Apply.
type Command interface{ isCommand() }

type (
	// AddRoom appends a room with catalog defaults and makes it current.
	AddRoom struct{}
	// RemoveRoom removes the room at Index. Refused when it is the last room.
	RemoveRoom struct{ Index int }
	// SwitchRoom moves the current-room pointer.
	SwitchRoom struct{ Index int }
	// RenameRoom renames the current room.
	RenameRoom struct{ Name string }
	// SetRoomNotes replaces the current room's notes.
	SetRoomNotes struct{ Notes string }
	// SetClosetType sets the current room's closet type.
	SetClosetType struct{ Value string }
	// SetLinearFeet sets the current room's linear footage.
	SetLinearFeet struct{ Value float64 }
	// SetDepth sets the current room's cabinet depth in inches.
	SetDepth struct{ Value int }
	// SetHeight sets the current room's height in inches.
	SetHeight struct{ Value float64 }
	// SetMaterial sets the current room's material id.
	SetMaterial struct{ ID string }
	// SetHardwareFinish sets the current room's hardware finish id.
	SetHardwareFinish struct{ ID string }
	// SetMounting sets the current room's mounting id.
	SetMounting struct{ ID string }
	// SetAddon replaces the current room's entry for Key wholesale; both
	// fields are overwritten regardless of which one the caller changed.
	SetAddon struct {
		Key      string
		Enabled  bool
		Quantity float64
	}
	// SetClientName sets the client name; first non-empty name regenerates
	// the quote number with the client's initials.
	SetClientName struct{ Value string }
	// SetClientAddress sets the client address.
	SetClientAddress struct{ Value string }
	// SetClientPhone sets the client phone.
	SetClientPhone struct{ Value string }
	// SetClientEmail sets the client email.
	SetClientEmail struct{ Value string }
	// SetTaxRate sets the tax percentage applied after discount.
	SetTaxRate struct{ Rate float64 }
	// SetDiscount sets the discount type and value together.
	SetDiscount struct {
		Type  DiscountType
		Value float64
	}
	// SetNotes replaces the estimate-level notes.
	SetNotes struct{ Notes string }
	// Reset replaces the whole document with a fresh single-room estimate.
	Reset struct{}
)

func (AddRoom) isCommand()           {}
func (RemoveRoom) isCommand()        {}
func (SwitchRoom) isCommand()        {}
func (RenameRoom) isCommand()        {}
func (SetRoomNotes) isCommand()      {}
func (SetClosetType) isCommand()     {}
func (SetLinearFeet) isCommand()     {}
func (SetDepth) isCommand()          {}
func (SetHeight) isCommand()         {}
func (SetMaterial) isCommand()       {}
func (SetHardwareFinish) isCommand() {}
func (SetMounting) isCommand()       {}
func (SetAddon) isCommand()          {}
func (SetClientName) isCommand()     {}
func (SetClientAddress) isCommand()  {}
func (SetClientPhone) isCommand()    {}
func (SetClientEmail) isCommand()    {}
func (SetTaxRate) isCommand()        {}
func (SetDiscount) isCommand()       {}
func (SetNotes) isCommand()          {}
func (Reset) isCommand()             {}

// Session owns the in-memory estimate and the current-room pointer for one
// editing session. The HTTP handlers and the autosave job share it, so all
// access goes through the lock.
type Session struct {
	mu      sync.Mutex
	est     *Estimate
	current int
	now     func() time.Time
}

// NewSession wraps an estimate, creating a fresh one when est is nil. The
// current-room pointer always starts at 0.
func NewSession(est *Estimate) *Session {
	s := &Session{now: time.Now}
	if est == nil {
		est = New(s.now())
	}
	s.est = est
	s.ensureRoom()
	return s
}

// Apply executes one command against the document. It returns false, leaving
// the state unchanged, for structural refusals: removing the last room or
// addressing an out-of-range room index. It never panics and never errors.
func (s *Session) Apply(cmd Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c := cmd.(type) {
	case AddRoom:
		s.est.Rooms = append(s.est.Rooms, NewRoom())
		s.current = len(s.est.Rooms) - 1
	case RemoveRoom:
		if len(s.est.Rooms) <= 1 || c.Index < 0 || c.Index >= len(s.est.Rooms) {
			return false
		}
		s.est.Rooms = append(s.est.Rooms[:c.Index], s.est.Rooms[c.Index+1:]...)
		if s.current >= len(s.est.Rooms) {
			s.current = len(s.est.Rooms) - 1
		}
	case SwitchRoom:
		if c.Index < 0 || c.Index >= len(s.est.Rooms) {
			return false
		}
		s.current = c.Index
	case RenameRoom:
		s.room().Name = c.Name
	case SetRoomNotes:
		s.room().Notes = c.Notes
	case SetClosetType:
		s.room().Closet.ClosetType = c.Value
	case SetLinearFeet:
		s.room().Closet.LinearFeet = nonNegative(c.Value)
	case SetDepth:
		s.room().Closet.Depth = c.Value
	case SetHeight:
		s.room().Closet.Height = nonNegative(c.Value)
	case SetMaterial:
		s.room().Closet.Material = c.ID
	case SetHardwareFinish:
		s.room().Closet.HardwareFinish = c.ID
	case SetMounting:
		s.room().Closet.Mounting = c.ID
	case SetAddon:
		room := s.room()
		if room.Addons == nil {
			room.Addons = map[string]AddonSelection{}
		}
		room.Addons[c.Key] = AddonSelection{Enabled: c.Enabled, Quantity: nonNegative(c.Quantity)}
	case SetClientName:
		if s.est.Client.Name == "" && c.Value != "" {
			s.est.QuoteNumber = QuoteNumberAt(s.now(), c.Value)
		}
		s.est.Client.Name = c.Value
	case SetClientAddress:
		s.est.Client.Address = c.Value
	case SetClientPhone:
		s.est.Client.Phone = c.Value
	case SetClientEmail:
		s.est.Client.Email = c.Value
	case SetTaxRate:
		s.est.TaxRate = nonNegative(c.Rate)
	case SetDiscount:
		s.est.DiscountType = c.Type
		s.est.DiscountValue = nonNegative(c.Value)
	case SetNotes:
		s.est.Notes = c.Notes
	case Reset:
		s.est = New(s.now())
		s.current = 0
	}
	return true
}

// Snapshot returns a deep copy of the document and the current-room index.
func (s *Session) Snapshot() (*Estimate, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.est.Clone(), s.current
}

// Replace swaps in a new document (after a load or import) and resets the
// current-room pointer to 0. A roomless document gains one default room.
func (s *Session) Replace(est *Estimate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.est = est
	s.current = 0
	s.ensureRoom()
}

// SetRevision stamps the revision counter, used by the export flow when a
// quote number is re-exported.
func (s *Session) SetRevision(rev int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.est.Revision = rev
}

func (s *Session) room() *Room {
	return &s.est.Rooms[s.current]
}

func (s *Session) ensureRoom() {
	if len(s.est.Rooms) == 0 {
		s.est.Rooms = []Room{NewRoom()}
	}
	if s.current >= len(s.est.Rooms) {
		s.current = len(s.est.Rooms) - 1
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
