package seatmap

// Seat roles label how a seat was sold or reserved. The color map is a
// static lookup consumed by the seat-grid UI legend; it takes no part in
// allocation.

const DefaultRole = "Row Tickets Sales"

// RoleColors maps each known role to its display hex color.
var RoleColors = map[string]string{
	"Row Tickets Sales": "#EF4444",
	"GA Tickets Sales":  "#22C55E",
	"VIP TABLE":         "#F59E0B",
	"Vip/Celebrities":   "#EAB308",
	"Sponsor":           "#3B82F6",
	"Influencers":       "#0EA5E9",
	"Press Magazines":   "#A855F7",
	"Potential Brands":  "#D946EF",
	"Project Lab Guest": "#15803D",
	"Complimentary":     "#F97316",
	"Guests per Brand":  "#14B8A6",
	"Selected Models":   "#64748B",
	"Giveaway":          "#EAB308",
	"Performers Guests": "#6366F1",
	"Collabs":           "#06B6D4",
	"BRONZE PACKAGE":    "#78350F",
	"SILVER PACKAGE":    "#94A3B8",
	"GOLD PACKAGE":      "#FACC15",
}

// IsValidRole checks if the role is part of the registry
func IsValidRole(role string) bool {
	_, ok := RoleColors[role]
	return ok
}

// RoleForType returns the sales role recorded on seats allocated by the
// batch importer.
func RoleForType(seatType SeatType) string {
	switch seatType {
	case TypeGeneral:
		return "GA Tickets Sales"
	case TypeVIP:
		return "VIP TABLE"
	default:
		return DefaultRole
	}
}
