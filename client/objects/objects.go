package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

// BaseObject carries the tree bookkeeping shared by every object. Types
// embedding it override the lifecycle methods they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childObjects
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings in a SortedZIndexObject. Lower draws first.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildObjects(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error { return nil }
func (o *BaseObject) Destroy() error { return nil }
func (o *BaseObject) Update() error { return nil }
func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.List()
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.idxIDObjects[id]; ok {
		return fmt.Errorf("child object with id already exists")
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object and destroys its tree.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object has no parent")
	}
	return o.parent.RemoveChild(o.id)
}

// childObjects keeps children in insertion order with lookup by id.
type childObjects struct {
	idxIDObjects map[string]int
	objects      []GameObject
}

func newChildObjects() *childObjects {
	return &childObjects{
		idxIDObjects: make(map[string]int),
	}
}

func (c *childObjects) Add(id string, obj GameObject) {
	c.idxIDObjects[id] = len(c.objects)
	c.objects = append(c.objects, obj)
}

func (c *childObjects) Get(id string) GameObject {
	idx, ok := c.idxIDObjects[id]
	if !ok {
		return nil
	}
	return c.objects[idx]
}

func (c *childObjects) Remove(id string) {
	idx, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	c.objects = append(c.objects[:idx], c.objects[idx+1:]...)
	delete(c.idxIDObjects, id)
	for i := idx; i < len(c.objects); i++ {
		c.idxIDObjects[c.objects[i].GetID()] = i
	}
}

func (c *childObjects) List() []GameObject {
	return c.objects
}
