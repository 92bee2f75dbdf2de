package awd

func decodeSkeleton(data []byte, base int) (*Skeleton, error) {
	r := newReader(data, base)
	sk := &Skeleton{}
	var err error
	if sk.Name, err = r.varStr("skeleton name"); err != nil {
		return sk, err
	}
	if sk.NumJoints, err = r.u32("joint count"); err != nil {
		return sk, err
	}
	if sk.Properties, err = r.readProperties(); err != nil {
		return sk, err
	}

	for uint32(len(sk.Joints)) < sk.NumJoints && r.remaining() > 0 {
		var j Joint
		if j.ID, err = r.u32("joint id"); err != nil {
			return sk, err
		}
		if j.ParentID, err = r.u32("joint parent id"); err != nil {
			return sk, err
		}
		if j.Name, err = r.varStr("joint name"); err != nil {
			return sk, err
		}
		// Bind pose, not decoded.
		if err = r.skip(JointReservedSize, "joint bind pose"); err != nil {
			return sk, err
		}
		sk.Joints = append(sk.Joints, j)
	}

	if sk.Attributes, err = r.readUserAttributes(); err != nil {
		return sk, err
	}
	return sk, r.end("skeleton")
}
