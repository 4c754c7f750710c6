package dis7

import (
	"fmt"
)

type PduType uint8

const (
	PduTypeOther                   PduType = 0
	PduTypeEntityState             PduType = 1
	PduTypeFire                    PduType = 2
	PduTypeDetonation              PduType = 3
	PduTypeCollision               PduType = 4
	PduTypeServiceRequest          PduType = 5
	PduTypeResupplyOffer           PduType = 6
	PduTypeResupplyReceived        PduType = 7
	PduTypeResupplyCancel          PduType = 8
	PduTypeRepairComplete          PduType = 9
	PduTypeRepairResponse          PduType = 10
	PduTypeCreateEntity            PduType = 11
	PduTypeRemoveEntity            PduType = 12
	PduTypeStartResume             PduType = 13
	PduTypeStopFreeze              PduType = 14
	PduTypeAcknowledge             PduType = 15
	PduTypeActionRequest           PduType = 16
	PduTypeActionResponse          PduType = 17
	PduTypeDataQuery               PduType = 18
	PduTypeSetData                 PduType = 19
	PduTypeData                    PduType = 20
	PduTypeEventReport             PduType = 21
	PduTypeComment                 PduType = 22
	PduTypeElectromagneticEmission PduType = 23
	PduTypeDesignator              PduType = 24
	PduTypeTransmitter             PduType = 25
	PduTypeSignal                  PduType = 26
	PduTypeReceiver                PduType = 27
	PduTypeCreateEntityR           PduType = 51
	PduTypeRemoveEntityR           PduType = 52
	PduTypeStartResumeR            PduType = 53
	PduTypeStopFreezeR             PduType = 54
	PduTypeAcknowledgeR            PduType = 55
	PduTypeActionRequestR          PduType = 56
	PduTypeActionResponseR         PduType = 57
	PduTypeDataQueryR              PduType = 58
	PduTypeSetDataR                PduType = 59
	PduTypeDataR                   PduType = 60
	PduTypeEventReportR            PduType = 61
	PduTypeCommentR                PduType = 62
	PduTypeCollisionElastic        PduType = 66
	PduTypeEntityStateUpdate       PduType = 67
	PduTypeDirectedEnergyFire      PduType = 68
	PduTypeEntityDamageStatus      PduType = 69
	PduTypeAttribute               PduType = 72
)

var pduTypeNames = map[PduType]string{
	PduTypeOther:                   "Other",
	PduTypeEntityState:             "EntityState",
	PduTypeFire:                    "Fire",
	PduTypeDetonation:              "Detonation",
	PduTypeCollision:               "Collision",
	PduTypeServiceRequest:          "ServiceRequest",
	PduTypeResupplyOffer:           "ResupplyOffer",
	PduTypeResupplyReceived:        "ResupplyReceived",
	PduTypeResupplyCancel:          "ResupplyCancel",
	PduTypeRepairComplete:          "RepairComplete",
	PduTypeRepairResponse:          "RepairResponse",
	PduTypeCreateEntity:            "CreateEntity",
	PduTypeRemoveEntity:            "RemoveEntity",
	PduTypeStartResume:             "StartResume",
	PduTypeStopFreeze:              "StopFreeze",
	PduTypeAcknowledge:             "Acknowledge",
	PduTypeActionRequest:           "ActionRequest",
	PduTypeActionResponse:          "ActionResponse",
	PduTypeDataQuery:               "DataQuery",
	PduTypeSetData:                 "SetData",
	PduTypeData:                    "Data",
	PduTypeEventReport:             "EventReport",
	PduTypeComment:                 "Comment",
	PduTypeElectromagneticEmission: "ElectromagneticEmission",
	PduTypeDesignator:              "Designator",
	PduTypeTransmitter:             "Transmitter",
	PduTypeSignal:                  "Signal",
	PduTypeReceiver:                "Receiver",
	PduTypeCreateEntityR:           "CreateEntity-R",
	PduTypeRemoveEntityR:           "RemoveEntity-R",
	PduTypeStartResumeR:            "StartResume-R",
	PduTypeStopFreezeR:             "StopFreeze-R",
	PduTypeAcknowledgeR:            "Acknowledge-R",
	PduTypeActionRequestR:          "ActionRequest-R",
	PduTypeActionResponseR:         "ActionResponse-R",
	PduTypeDataQueryR:              "DataQuery-R",
	PduTypeSetDataR:                "SetData-R",
	PduTypeDataR:                   "Data-R",
	PduTypeEventReportR:            "EventReport-R",
	PduTypeCommentR:                "Comment-R",
	PduTypeCollisionElastic:        "CollisionElastic",
	PduTypeEntityStateUpdate:       "EntityStateUpdate",
	PduTypeDirectedEnergyFire:      "DirectedEnergyFire",
	PduTypeEntityDamageStatus:      "EntityDamageStatus",
	PduTypeAttribute:               "Attribute",
}

func (t PduType) String() string {
	if name, ok := pduTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PduType(%d)", uint8(t))
}

type ProtocolFamily uint8

const (
	FamilyOther                           ProtocolFamily = 0
	FamilyEntityInformation               ProtocolFamily = 1
	FamilyWarfare                         ProtocolFamily = 2
	FamilyLogistics                       ProtocolFamily = 3
	FamilyRadioCommunications             ProtocolFamily = 4
	FamilySimulationManagement            ProtocolFamily = 5
	FamilyDistributedEmissionRegeneration ProtocolFamily = 6
	FamilyEntityManagement                ProtocolFamily = 7
	FamilyMinefield                       ProtocolFamily = 8
	FamilySyntheticEnvironment            ProtocolFamily = 9
	FamilySimulationManagementR           ProtocolFamily = 10
	FamilyLiveEntity                      ProtocolFamily = 11
	FamilyNonRealTime                     ProtocolFamily = 12
	FamilyInformationOperations           ProtocolFamily = 13
)

var familyNames = map[ProtocolFamily]string{
	FamilyOther:                           "Other",
	FamilyEntityInformation:               "EntityInformation",
	FamilyWarfare:                         "Warfare",
	FamilyLogistics:                       "Logistics",
	FamilyRadioCommunications:             "RadioCommunications",
	FamilySimulationManagement:            "SimulationManagement",
	FamilyDistributedEmissionRegeneration: "DistributedEmissionRegeneration",
	FamilyEntityManagement:                "EntityManagement",
	FamilyMinefield:                       "Minefield",
	FamilySyntheticEnvironment:            "SyntheticEnvironment",
	FamilySimulationManagementR:           "SimulationManagement-R",
	FamilyLiveEntity:                      "LiveEntity",
	FamilyNonRealTime:                     "NonRealTime",
	FamilyInformationOperations:           "InformationOperations",
}

func (f ProtocolFamily) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ProtocolFamily(%d)", uint8(f))
}
