package ast

type (
	// главные сущности
	FileID    uint32
	ItemID    uint32
	BindingID uint32
	ExprID    uint32
	PatID     uint32
	// подсущности
	AttrID      uint32
	ExtensionID uint32
	PayloadID   uint32
)

const (
	NoFileID      FileID      = 0
	NoItemID      ItemID      = 0
	NoBindingID   BindingID   = 0
	NoExprID      ExprID      = 0
	NoPatID       PatID       = 0
	NoAttrID      AttrID      = 0
	NoExtensionID ExtensionID = 0
	NoPayloadID   PayloadID   = 0
)

func (id FileID) IsValid() bool      { return id != NoFileID }
func (id ItemID) IsValid() bool      { return id != NoItemID }
func (id BindingID) IsValid() bool   { return id != NoBindingID }
func (id ExprID) IsValid() bool      { return id != NoExprID }
func (id PatID) IsValid() bool       { return id != NoPatID }
func (id AttrID) IsValid() bool      { return id != NoAttrID }
func (id ExtensionID) IsValid() bool { return id != NoExtensionID }
func (id PayloadID) IsValid() bool   { return id != NoPayloadID }
