package models

// Scan status constants returned by /api/scan
const (
	ScanOK      = "ok"
	ScanInvalid = "invalid"
	ScanUsed    = "used"
	ScanError   = "error"
)

// Request types

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type ScanRequest struct {
	Code string `json:"code"`
}

// Response types

type RegisterResponse struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
}

type ScanResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Score   int64  `json:"score,omitempty"`
}

type LeaderboardEntry struct {
	Name  string `json:"name"`
	Score int64  `json:"score"`
}

type AdminPlayer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`
}

type ResetResponse struct {
	Message     string `json:"message"`
	CodesLoaded int    `json:"codes_loaded"`
}

// Domain types

type Player struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // Never expose in JSON
	Score        int64  `json:"score"`
}

type Code struct {
	ID             int64   `json:"id"`
	Code           string  `json:"code"`
	UsedByPlayerID *int64  `json:"used_by_player_id,omitempty"`
	UsedAt         *string `json:"used_at,omitempty"`
}

type Scan struct {
	ID        int64  `json:"id"`
	PlayerID  int64  `json:"player_id"`
	CodeID    int64  `json:"code_id"`
	ScannedAt string `json:"scanned_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
