package domain

import "fmt"

type UpdateType string

const (
	UpdateFeature     UpdateType = "feature"
	UpdateBugfix      UpdateType = "bugfix"
	UpdateImprovement UpdateType = "improvement"
	UpdateRelease     UpdateType = "release"
)

// UpdateTypes lists every update type in display order.
func UpdateTypes() []UpdateType {
	return []UpdateType{UpdateFeature, UpdateBugfix, UpdateImprovement, UpdateRelease}
}

func (t UpdateType) Valid() bool {
	_, ok := updateTypeInfo[t]
	return ok
}

type UpdateTypeInfo struct {
	Label string
	Color string
	Icon  string
}

var updateTypeInfo = map[UpdateType]UpdateTypeInfo{
	UpdateFeature: {
		Label: "새 기능",
		Color: "bg-emerald-100 text-emerald-800",
		Icon:  "✨",
	},
	UpdateBugfix: {
		Label: "버그 수정",
		Color: "bg-red-100 text-red-800",
		Icon:  "🐛",
	},
	UpdateImprovement: {
		Label: "기능 개선",
		Color: "bg-blue-100 text-blue-800",
		Icon:  "🔧",
	},
	UpdateRelease: {
		Label: "정식 출시",
		Color: "bg-purple-100 text-purple-800",
		Icon:  "🚀",
	},
}

// Info returns the display metadata for t. It panics for a value outside
// the enumeration.
func (t UpdateType) Info() UpdateTypeInfo {
	info, ok := updateTypeInfo[t]
	if !ok {
		panic(fmt.Sprintf("domain: unknown update type %q", string(t)))
	}
	return info
}

// UpdateRecord is one changelog entry. Content is the markdown body.
type UpdateRecord struct {
	ID      string     `validate:"required"`
	Date    string     `validate:"required,datetime=2006-01-02"`
	Title   string     `validate:"required"`
	Type    UpdateType `validate:"required,oneof=feature bugfix improvement release"`
	Summary string     `validate:"required"`
	Content string     `validate:"required"`
}
