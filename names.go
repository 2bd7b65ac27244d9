package assetkit

// Curated names of the embedded font families.
const (
	FontSansRegular  = "DejaVu_Sans/DejaVuSans.ttf"
	FontSansBold     = "DejaVu_Sans/DejaVuSans-Bold.ttf"
	FontMonoRegular  = "DejaVu_Sans_Mono/DejaVuSansMono.ttf"
	FontMonoBold     = "DejaVu_Sans_Mono/DejaVuSansMono-Bold.ttf"
	FontSerifRegular = "DejaVu_Serif/DejaVuSerif.ttf"
	FontSerifBold    = "DejaVu_Serif/DejaVuSerif-Bold.ttf"
)

// Curated icons of the svg collection.
const (
	IconArrowUp    = "001-arrow-up.svg"
	IconArrowDown  = "002-arrow-down.svg"
	IconArrowLeft  = "003-arrow-left.svg"
	IconArrowRight = "004-arrow-right.svg"
	IconAdd        = "132-add.svg"
	IconDelete     = "129-delete.svg"
	IconUpload     = "228-upload.svg"
	IconDownload   = "001-download.svg"
	IconRefresh    = "180-reload.svg"
	IconBattery    = "001-battery.svg"
	IconLightbulb  = "002-lightbulb.svg"
	IconToolbox    = "003-toolbox.svg"
)

// Curated icons of the uiicons collection.
const (
	UIIconAdd      = "fi-tr-add.svg"
	UIIconEdit     = "fi-tr-pen.svg"
	UIIconDelete   = "fi-tr-trash-empty.svg"
	UIIconSave     = "fi-tr-floppy-disk-pen.svg"
	UIIconUpload   = "fi-tr-file-upload.svg"
	UIIconDownload = "fi-tr-file-download.svg"
	UIIconRefresh  = "fi-tr-rotate-reverse.svg"
	UIIconCopy     = "fi-tr-copy.svg"
	UIIconUser     = "fi-tr-user.svg"
	UIIconHome     = "fi-tr-house.svg"
)

var curated = map[string][]string{
	CollectionFonts: {
		FontSansRegular, FontSansBold, FontMonoRegular, FontMonoBold,
		FontSerifRegular, FontSerifBold,
	},
	CollectionSVG: {
		IconArrowUp, IconArrowDown, IconArrowLeft, IconArrowRight,
		IconAdd, IconDelete, IconUpload, IconDownload, IconRefresh,
		IconBattery, IconLightbulb, IconToolbox,
	},
	CollectionUIIcons: {
		UIIconAdd, UIIconEdit, UIIconDelete, UIIconSave, UIIconUpload,
		UIIconDownload, UIIconRefresh, UIIconCopy, UIIconUser, UIIconHome,
	},
}

// CuratedNames returns the curated names of a built-in collection.
// Other collections have none.
func CuratedNames(collection string) []string {
	names := curated[collection]
	out := make([]string, len(names))
	copy(out, names)
	return out
}
