package analyze

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadStore(t *testing.T) *PackageInfo {
	t.Helper()

	pkgs, err := NewLoader("").LoadPackages("debug-generator/store")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	return pkgs[0]
}

func TestLoader_LoadPackages(t *testing.T) {
	pkg := loadStore(t)

	assert.Equal(t, "debug-generator/store", pkg.Path)
	assert.Equal(t, "store", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)
	assert.NotEmpty(t, pkg.Files)

	for _, name := range []string{"Product", "Customer", "Order", "OrderItem", "OrderStatus"} {
		assert.NotNil(t, pkg.Lookup(name), name)
	}
}

func TestLoader_OrderFields(t *testing.T) {
	order := loadStore(t).Lookup("Order")
	require.NotNil(t, order)
	assert.Equal(t, TypeKindStruct, order.Kind)
	assert.True(t, order.Derive)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"ID", "CustomerID", "Status", "TotalCents", "Items", "OrderedAt"}, names)
}

func TestLoader_FieldTags(t *testing.T) {
	product := loadStore(t).Lookup("Product")
	require.NotNil(t, product)

	var sku *FieldInfo
	for i := range product.Fields {
		if product.Fields[i].Name == "SKU" {
			sku = &product.Fields[i]
			break
		}
	}
	require.NotNil(t, sku)

	assert.Equal(t, `json:"sku"               debug:"%s"`, sku.Tag)
	assert.Contains(t, sku.TagPos.Filename, "types.go")
	assert.Positive(t, sku.TagPos.Line)
}

func TestLoader_EnumType(t *testing.T) {
	status := loadStore(t).Lookup("OrderStatus")
	require.NotNil(t, status)

	assert.Equal(t, TypeKindEnum, status.Kind)
	assert.False(t, status.Derive)
}

func TestLoader_SelectDerived(t *testing.T) {
	decls, err := loadStore(t).Select(nil)
	require.NoError(t, err)

	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}

	assert.Equal(t, []string{"Product", "Customer", "Order", "OrderItem"}, names)
}

func TestLoader_SelectUnknownType(t *testing.T) {
	pkg := loadStore(t)

	_, err := pkg.Select([]string{"Product", "Custmer"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type Custmer not found in package debug-generator/store")
	assert.Equal(t, "did you mean Customer?", errors.FlattenHints(err))

	_, err = pkg.Select([]string{"Warehouse"})
	require.Error(t, err)
	assert.Empty(t, errors.FlattenHints(err))
}

func TestLoader_DefinedTypes(t *testing.T) {
	pkgs, err := NewLoader("").LoadPackages("./testdata/derived")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	pkg := pkgs[0]

	fieldNames := func(decl *TypeDecl) []string {
		var names []string
		for _, f := range decl.Fields {
			names = append(names, f.Name)
		}

		return names
	}

	copied := pkg.Lookup("Copy")
	require.NotNil(t, copied)
	assert.Equal(t, TypeKindStruct, copied.Kind)
	assert.Equal(t, []string{"ID"}, fieldNames(copied))

	inst := pkg.Lookup("IntBox")
	require.NotNil(t, inst)
	assert.Equal(t, TypeKindStruct, inst.Kind)
	assert.Equal(t, []string{"Val", "count"}, fieldNames(inst))
	assert.Equal(t, `debug:"<%v>"`, inst.Fields[0].Tag)
	assert.Equal(t, "`debug:\"<%v>\"`", inst.Fields[0].TagLit)
	assert.Equal(t, 6, inst.Fields[0].TagPos.Line)
	assert.Contains(t, inst.Fields[0].TagPos.Filename, "derived.go")

	where := pkg.Lookup("Where")
	require.NotNil(t, where)
	assert.Equal(t, TypeKindStruct, where.Kind)
	assert.Equal(t, []string{"Filename", "Offset", "Line", "Column"}, fieldNames(where))

	assert.Equal(t, TypeKindAlias, pkg.Lookup("Level").Kind)
	assert.Equal(t, TypeKindAlias, pkg.Lookup("Pos").Kind)
}

func TestLoader_BuildTags(t *testing.T) {
	assert.Empty(t, NewLoader("").BuildFlags)
	assert.Equal(t, []string{"-tags=debug,linux"}, NewLoader("", "debug", "linux").BuildFlags)

	pkgs, err := NewLoader("", "extra").LoadPackages("./testdata/derived")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.NotNil(t, pkgs[0].Lookup("Extra"))

	pkgs, err = NewLoader("").LoadPackages("./testdata/derived")
	require.NoError(t, err)
	assert.Nil(t, pkgs[0].Lookup("Extra"))
}

func TestLoader_BadPattern(t *testing.T) {
	_, err := NewLoader("").LoadPackages("debug-generator/does/not/exist")
	require.Error(t, err)
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "interface", TypeKindInterface.String())
	assert.Equal(t, "enum", TypeKindEnum.String())
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}
