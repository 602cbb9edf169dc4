package reflectx_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/helpers/pkg/reflectx"
)

type Model struct {
	ID int `json:"id"`
}

type Auditable struct {
	*Model
	UpdatedBy string
}

type User struct {
	Auditable
	FirstName string `json:"first_name"`
	Email     string `json:"email_address"`
	password  string
}

func (u User) String() string { return u.FirstName }

type Admin struct {
	User
	Level int
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("register and lookup ignoring case", func(t *testing.T) {
		r := reflectx.NewRegistry()
		require.NoError(t, r.Register("User", reflectx.TypeOf[User]()))

		got, ok := r.Lookup("user")
		require.True(t, ok)
		assert.Equal(t, reflect.TypeOf(User{}), got)

		_, ok = r.Lookup("Missing")
		assert.False(t, ok)
	})

	t.Run("re-registering the same type is a no-op", func(t *testing.T) {
		r := reflectx.NewRegistry()
		require.NoError(t, r.Register("User", reflectx.TypeOf[User]()))
		assert.NoError(t, r.Register("USER", reflectx.TypeOf[User]()))
	})

	t.Run("conflicting registration fails", func(t *testing.T) {
		r := reflectx.NewRegistry()
		require.NoError(t, r.Register("User", reflectx.TypeOf[User]()))
		err := r.Register("user", reflectx.TypeOf[Admin]())
		assert.ErrorIs(t, err, reflectx.ErrTypeConflict)
	})

	t.Run("invalid registration fails", func(t *testing.T) {
		r := reflectx.NewRegistry()
		assert.ErrorIs(t, r.Register("", reflectx.TypeOf[User]()), reflectx.ErrInvalidType)
		assert.ErrorIs(t, r.Register("Nil", nil), reflectx.ErrInvalidType)
	})

	t.Run("names are sorted", func(t *testing.T) {
		r := reflectx.NewRegistry()
		require.NoError(t, r.Register("b", reflectx.TypeOf[User]()))
		require.NoError(t, r.Register("a", reflectx.TypeOf[Admin]()))
		assert.Equal(t, []string{"a", "b"}, r.Names())
	})

	t.Run("default registry has built-in types", func(t *testing.T) {
		got, ok := reflectx.Default().Lookup("UUID")
		require.True(t, ok)
		assert.Equal(t, reflect.TypeOf(uuid.UUID{}), got)

		got, ok = reflectx.Default().Lookup("datetime")
		require.True(t, ok)
		assert.Equal(t, reflect.TypeOf(time.Time{}), got)

		assert.Same(t, reflectx.Default(), reflectx.Default())
	})
}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, reflect.Interface, reflectx.TypeOf[error]().Kind())
	assert.Equal(t, reflect.Struct, reflectx.TypeOf[User]().Kind())
}

func TestIsInstance(t *testing.T) {
	t.Parallel()

	userType := reflectx.TypeOf[User]()
	modelType := reflectx.TypeOf[Model]()

	assert.True(t, reflectx.IsInstance(User{}, userType))
	assert.True(t, reflectx.IsInstance(&User{}, userType), "pointer counts")
	assert.True(t, reflectx.IsInstance(Admin{}, userType), "embedded ancestor")
	assert.True(t, reflectx.IsInstance(Admin{}, modelType), "ancestor through pointer embedding")
	assert.False(t, reflectx.IsInstance(Model{}, userType))
	assert.False(t, reflectx.IsInstance(nil, userType))
	assert.False(t, reflectx.IsInstance("x", userType))

	assert.True(t, reflectx.IsInstance(User{}, reflectx.TypeOf[fmt.Stringer]()))
	assert.True(t, reflectx.IsInstance(errors.New("x"), reflectx.TypeOf[error]()))
	assert.False(t, reflectx.IsInstance(Model{}, reflectx.TypeOf[fmt.Stringer]()))
}

func TestAncestors(t *testing.T) {
	t.Parallel()

	got := reflectx.Ancestors(reflect.TypeOf(&Admin{}))
	assert.Equal(t, []reflect.Type{
		reflectx.TypeOf[Admin](),
		reflectx.TypeOf[User](),
		reflectx.TypeOf[Auditable](),
		reflectx.TypeOf[Model](),
	}, got)
}

func TestFindField(t *testing.T) {
	t.Parallel()

	adminType := reflectx.TypeOf[Admin]()

	t.Run("own field", func(t *testing.T) {
		f, ok := reflectx.FindField(adminType, "Level", false)
		require.True(t, ok)
		assert.Equal(t, []int{1}, f.Index)
		assert.Equal(t, adminType, f.Owner)
	})

	t.Run("ancestor field by json tag", func(t *testing.T) {
		f, ok := reflectx.FindField(adminType, "email_address", false)
		require.True(t, ok)
		assert.Equal(t, "Email", f.Name)
		assert.Equal(t, reflectx.TypeOf[User](), f.Owner)
		assert.Equal(t, []int{0, 2}, f.Index)
	})

	t.Run("convention-insensitive name", func(t *testing.T) {
		f, ok := reflectx.FindField(adminType, "firstName", false)
		require.True(t, ok)
		assert.Equal(t, "FirstName", f.Name)
	})

	t.Run("deep ancestor through pointer", func(t *testing.T) {
		f, ok := reflectx.FindField(adminType, "id", false)
		require.True(t, ok)
		assert.Equal(t, "ID", f.Name)
		assert.Equal(t, []int{0, 0, 0, 0}, f.Index)
	})

	t.Run("unexported only on request", func(t *testing.T) {
		_, ok := reflectx.FindField(adminType, "password", false)
		assert.False(t, ok)

		f, ok := reflectx.FindField(adminType, "password", true)
		require.True(t, ok)
		assert.False(t, f.Exported())
	})

	t.Run("non struct", func(t *testing.T) {
		_, ok := reflectx.FindField(reflect.TypeOf(1), "x", true)
		assert.False(t, ok)
	})

	t.Run("cached result is stable", func(t *testing.T) {
		a, _ := reflectx.FindField(adminType, "Level", false)
		b, _ := reflectx.FindField(adminType, "Level", false)
		assert.Equal(t, a, b)
	})
}

func TestExpose(t *testing.T) {
	t.Parallel()

	t.Run("reads and writes unexported field", func(t *testing.T) {
		u := &User{password: "old"}
		f, ok := reflectx.FindField(reflect.TypeOf(u), "password", true)
		require.True(t, ok)

		field := reflect.ValueOf(u).Elem().FieldByIndex(f.Index)
		err := reflectx.Expose(field, func(view reflect.Value) error {
			assert.Equal(t, "old", view.Interface())
			view.SetString("new")
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "new", u.password)
	})

	t.Run("non addressable", func(t *testing.T) {
		field := reflect.ValueOf(User{}).Field(1)
		err := reflectx.Expose(field, func(reflect.Value) error { return nil })
		assert.ErrorIs(t, err, reflectx.ErrNotAddressable)
	})

	t.Run("panic becomes error", func(t *testing.T) {
		u := &User{}
		field := reflect.ValueOf(u).Elem().FieldByName("password")
		err := reflectx.Expose(field, func(view reflect.Value) error {
			view.SetInt(1)
			return nil
		})
		assert.ErrorIs(t, err, reflectx.ErrAccess)
	})
}

func TestMethod(t *testing.T) {
	t.Parallel()

	u := User{FirstName: "Ann"}
	m, ok := reflectx.Method(reflect.ValueOf(u), "String")
	require.True(t, ok)
	assert.Equal(t, "Ann", m.Call(nil)[0].Interface())

	_, ok = reflectx.Method(reflect.ValueOf(u), "Missing")
	assert.False(t, ok)
}
