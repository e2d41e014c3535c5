package models

// NoteShareType - режим видимости заметки
type NoteShareType string

const (
	NoteSharePrivate NoteShareType = "PRIVATE"
	NoteSharePublic  NoteShareType = "PUBLIC"
	NoteShareShared  NoteShareType = "SHARED"
)

var noteShareHumanName = map[NoteShareType]string{
	NoteSharePrivate: "Личная",
	NoteSharePublic:  "Общая",
	NoteShareShared:  "Для избранных",
}

func (s NoteShareType) IsValid() bool {
	_, exist := noteShareHumanName[s]
	return exist
}

func (s NoteShareType) ToHuman() string {
	if human, exist := noteShareHumanName[s]; exist {
		return human
	}
	return string(s)
}
