package playback

// Package playback implements the ambient sound playback controller. It owns
// the single currently-intended sound and mediates between user intent
// (play/stop/toggle/volume) and one underlying audio resource, guaranteeing
// that at most one resource is audible at any time. Rapid play/stop/play
// sequences are ordered by a generation counter: any asynchronous callback
// whose captured generation no longer matches the live one is discarded.
