// Package ui is the kiosk's Bubble Tea host.
//
// AppModel owns the session and the key router. After every update it
// mounts a view for the overlay on top of the stack:
//   - View: Elm-style Init/Update/View unit
//   - OverlayView: a View that owns the hardware keys while mounted
//   - HomeView: the timers shown when no overlay is open
//
// Overlay views are TimerModal, ShoppingModal, ProductsModal and ConfirmModal.
package ui
