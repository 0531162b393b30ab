package pcomb

import "log/slog"

type entityLookup func(DTD, string) (string, error)

// GeneralEntity expands a &Name; reference by splicing the declared
// replacement text into Input.Text. It consumes nothing and yields "": the
// replacement is parsed by whatever runs next.
func GeneralEntity() Parser[string] {
	return expander("&", "general", func(dtd DTD, name string) (string, error) {
		decl, ok := dtd.GeneralEntity(name)
		if !ok {
			return "", ErrUnresolvedEntity
		}
		if decl.Unparsed() {
			return "", ErrUnparsedEntity
		}
		if decl.External() {
			return "", ErrExternalEntity
		}
		return decl.Value, nil
	})
}

// ParamEntity expands a %Name; reference the same way GeneralEntity does.
func ParamEntity() Parser[string] {
	return expander("%", "parameter", func(dtd DTD, name string) (string, error) {
		decl, ok := dtd.ParamEntity(name)
		if !ok {
			return "", ErrUnresolvedEntity
		}
		if decl.External() {
			return "", ErrExternalEntity
		}
		return decl.Value, nil
	})
}

// EntityReference matches a reference of the given kind ("&" or "%")
// without expanding it and yields the entity name.
func EntityReference(open string) Parser[string] {
	return Delimited(Tag(open), Name(), Tag(";"))
}

func expander(open, kind string, lookup entityLookup) Parser[string] {
	ref := EntityReference(open)
	return func(in Input) (Input, string, error) {
		next, name, err := ref(in)
		if err != nil {
			return fail[string](in, err)
		}

		start, end := in.Pos, next.Pos
		cfg := in.Config
		value, err := lookup(cfg.DTD, name)
		switch err {
		case nil:
		case ErrExternalEntity:
			// not fatal: the caller may still keep the reference as a node
			return fail[string](in, Fail(start, err))
		default:
			return fail[string](in, Fatal(start, err))
		}

		if cfg.CurrentEntityDepth >= cfg.MaxEntityDepth {
			return fail[string](in, Fatal(start, ErrEntityDepthExceeded))
		}

		if start > cfg.EntityIndex {
			cfg.CurrentEntityDepth = 0
			cfg.EntityIndex = start + len(value)
		} else {
			cfg.CurrentEntityDepth++
		}

		cfg.Log().Debug("expanded entity",
			slog.String("kind", kind),
			slog.String("name", name),
			slog.Int("offset", start),
			slog.Int("depth", cfg.CurrentEntityDepth),
		)

		return Input{
			Text:   in.Text[:start] + value + in.Text[end:],
			Pos:    start,
			Config: cfg,
		}, "", nil
	}
}

// PredefinedEntities are the entities every document may reference without
// declaring them.
var PredefinedEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": `"`,
	"apos": "'",
}

// Predefined matches a reference to one of PredefinedEntities and yields
// its character.
func Predefined() Parser[string] {
	return Map(Validate(EntityReference("&"), func(name string) bool {
		_, ok := PredefinedEntities[name]
		return ok
	}, nil), func(name string) string {
		return PredefinedEntities[name]
	})
}
