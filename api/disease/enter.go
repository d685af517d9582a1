package disease

type Disease struct{}
