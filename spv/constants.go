package spv

import "fmt"

// Magic is the SPIR-V magic number in native word order.
const Magic uint32 = 0x07230203

// HeaderWords is the fixed size of the module header:
// magic, version, generator, bound, schema.
const HeaderWords = 5

// ExtPhysicalStorageBuffer is the extension that unlocks
// PhysicalStorageBuffer64 addressing.
const ExtPhysicalStorageBuffer = "SPV_KHR_physical_storage_buffer"

// Opcode represents a SPIR-V opcode, the low 16 bits of an instruction's
// header word. The high 16 bits carry the instruction's total word count,
// header word included.
type Opcode uint16

// Opcodes the patcher decodes or emits.
const (
	OpNop             Opcode = 0
	OpSourceContinued Opcode = 2
	OpSource          Opcode = 3
	OpSourceExtension Opcode = 4
	OpName            Opcode = 5
	OpMemberName      Opcode = 6
	OpString          Opcode = 7
	OpLine            Opcode = 8
	OpExtension       Opcode = 10
	OpExtInstImport   Opcode = 11
	OpExtInst         Opcode = 12
	OpMemoryModel     Opcode = 14
	OpEntryPoint      Opcode = 15
	OpExecutionMode   Opcode = 16
	OpCapability      Opcode = 17

	OpTypeVoid         Opcode = 19
	OpTypeBool         Opcode = 20
	OpTypeInt          Opcode = 21
	OpTypeFloat        Opcode = 22
	OpTypeVector       Opcode = 23
	OpTypeMatrix       Opcode = 24
	OpTypeImage        Opcode = 25
	OpTypeSampler      Opcode = 26
	OpTypeSampledImage Opcode = 27
	OpTypeArray        Opcode = 28
	OpTypeRuntimeArray Opcode = 29
	OpTypeStruct       Opcode = 30
	OpTypePointer      Opcode = 32
	OpTypeFunction     Opcode = 33

	OpConstantTrue      Opcode = 41
	OpConstantFalse     Opcode = 42
	OpConstant          Opcode = 43
	OpConstantComposite Opcode = 44
	OpConstantNull      Opcode = 46

	OpFunction          Opcode = 54
	OpFunctionParameter Opcode = 55
	OpFunctionEnd       Opcode = 56
	OpFunctionCall      Opcode = 57
	OpVariable          Opcode = 59
	OpLoad              Opcode = 61
	OpStore             Opcode = 62
	OpAccessChain       Opcode = 65

	OpDecorate       Opcode = 71
	OpMemberDecorate Opcode = 72

	OpLabel       Opcode = 248
	OpBranch      Opcode = 249
	OpReturn      Opcode = 253
	OpReturnValue Opcode = 254

	OpNoLine Opcode = 317
)

// AddressingModel is the module-wide pointer representation scheme,
// the first operand of OpMemoryModel.
type AddressingModel uint32

const (
	AddressingLogical                 AddressingModel = 0
	AddressingPhysical32              AddressingModel = 1
	AddressingPhysical64              AddressingModel = 2
	AddressingPhysicalStorageBuffer64 AddressingModel = 5348
)

var addressingModelNames = map[AddressingModel]string{
	AddressingLogical:                 "Logical",
	AddressingPhysical32:              "Physical32",
	AddressingPhysical64:              "Physical64",
	AddressingPhysicalStorageBuffer64: "PhysicalStorageBuffer64",
}

func (a AddressingModel) String() string {
	if s, ok := addressingModelNames[a]; ok {
		return s
	}
	return fmt.Sprintf("AddressingModel(%d)", uint32(a))
}

// MemoryModel is the second operand of OpMemoryModel.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

var memoryModelNames = map[MemoryModel]string{
	MemoryModelSimple:  "Simple",
	MemoryModelGLSL450: "GLSL450",
	MemoryModelOpenCL:  "OpenCL",
	MemoryModelVulkan:  "Vulkan",
}

func (m MemoryModel) String() string {
	if s, ok := memoryModelNames[m]; ok {
		return s
	}
	return fmt.Sprintf("MemoryModel(%d)", uint32(m))
}

// Capability is a module-level marker unlocking optional semantics.
type Capability uint32

const (
	CapabilityMatrix           Capability = 0
	CapabilityShader           Capability = 1
	CapabilityAddresses        Capability = 4
	CapabilityLinkage          Capability = 5
	CapabilityKernel           Capability = 6
	CapabilityFloat64          Capability = 10
	CapabilityInt64            Capability = 11
	CapabilityInt16            Capability = 22
	CapabilityInt8             Capability = 39
	CapabilityVariablePointers Capability = 4446

	// CapabilityPhysicalStorageBufferAddresses enables
	// PhysicalStorageBuffer64 addressing (SPV_KHR_physical_storage_buffer).
	CapabilityPhysicalStorageBufferAddresses Capability = 5347
)

var capabilityNames = map[Capability]string{
	CapabilityMatrix:                         "Matrix",
	CapabilityShader:                         "Shader",
	CapabilityAddresses:                      "Addresses",
	CapabilityLinkage:                        "Linkage",
	CapabilityKernel:                         "Kernel",
	CapabilityFloat64:                        "Float64",
	CapabilityInt64:                          "Int64",
	CapabilityInt16:                          "Int16",
	CapabilityInt8:                           "Int8",
	CapabilityVariablePointers:               "VariablePointers",
	CapabilityPhysicalStorageBufferAddresses: "PhysicalStorageBufferAddresses",
}

func (c Capability) String() string {
	if s, ok := capabilityNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Capability(%d)", uint32(c))
}

// StorageClass is the storage class operand of OpVariable and OpTypePointer.
type StorageClass uint32

const (
	StorageUniformConstant       StorageClass = 0
	StorageInput                 StorageClass = 1
	StorageUniform               StorageClass = 2
	StorageOutput                StorageClass = 3
	StorageWorkgroup             StorageClass = 4
	StoragePrivate               StorageClass = 6
	StorageFunction              StorageClass = 7
	StoragePushConstant          StorageClass = 9
	StorageStorageBuffer         StorageClass = 12
	StoragePhysicalStorageBuffer StorageClass = 5349
)

var storageClassNames = map[StorageClass]string{
	StorageUniformConstant:       "UniformConstant",
	StorageInput:                 "Input",
	StorageUniform:               "Uniform",
	StorageOutput:                "Output",
	StorageWorkgroup:             "Workgroup",
	StoragePrivate:               "Private",
	StorageFunction:              "Function",
	StoragePushConstant:          "PushConstant",
	StorageStorageBuffer:         "StorageBuffer",
	StoragePhysicalStorageBuffer: "PhysicalStorageBuffer",
}

func (s StorageClass) String() string {
	if name, ok := storageClassNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StorageClass(%d)", uint32(s))
}
