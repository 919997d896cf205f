package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

// ScreenSpace marks renderable entities drawn without the camera offset.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
